package postgen

import "io"

// Submission is the raw form input for one post.
type Submission struct {
	Title    string
	Date     string // YYYY-MM-DD, optional
	ImageAlt string
	Content  string

	// Image is nil when no file was selected.
	Image     io.Reader
	ImageType string // declared MIME type of Image, may be empty
}

// Draft is the derived record the article template is rendered from.
// It lives for a single submission and is never stored.
type Draft struct {
	Title        string
	ISODate      string
	DisplayDate  string
	ImageDataURL string
	ImageAlt     string
	ContentHTML  string // trusted markup produced by RenderContent
	Excerpt      string
}

// Result is a finished post ready to be offered as a download.
type Result struct {
	Filename    string
	ContentType string
	HTML        string
	Draft       Draft
}

// FormState carries values and messages back into the form page.
type FormState struct {
	Title     string
	Date      string
	ImageAlt  string
	Content   string
	Message   string // user-facing alert, empty when there is none
	Preview   string // generated HTML mirrored into the preview box
	CSRFToken string
}
