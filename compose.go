package postgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// HTMLContentType is the MIME type of every generated post.
const HTMLContentType = "text/html;charset=utf-8"

// ErrMissingFields is returned when the title or the content is blank.
var ErrMissingFields = errors.New("title and content are required")

const (
	msgMissingFields = "Prosím vyplň nadpis aj obsah článku."
	msgImageRead     = "Nepodarilo sa načítať obrázok. Skús to prosím znova."
)

// PreviewSink receives a copy of every generated post.
type PreviewSink interface {
	ShowPreview(html string)
}

// PreviewFunc adapts a plain function to PreviewSink.
type PreviewFunc func(html string)

// ShowPreview calls f(html).
func (f PreviewFunc) ShowPreview(html string) { f(html) }

// Composer turns a Submission into a finished post.
type Composer struct {
	Site          SiteConfig
	Images        ImageOptions
	ExcerptLength int
	Now           func() time.Time
	Preview       PreviewSink
}

// NewComposer creates a Composer from cfg, filling in defaults.
func NewComposer(cfg Config) *Composer {
	cfg.setDefaults()
	return &Composer{
		Site: cfg.Site,
		Images: ImageOptions{
			MaxSize:  cfg.MaxImageSize,
			MaxWidth: cfg.MaxImageWidth,
			Quality:  cfg.JPEGQuality,
		},
		ExcerptLength: cfg.ExcerptLength,
		Now:           time.Now,
	}
}

// Compose validates sub, derives the draft fields, embeds the image when one
// is attached and renders the article. Nothing is produced on error.
func (c *Composer) Compose(ctx context.Context, sub Submission) (Result, error) {
	title := strings.TrimSpace(sub.Title)
	if title == "" || strings.TrimSpace(sub.Content) == "" {
		return Result{}, ErrMissingFields
	}

	isoDate := strings.TrimSpace(sub.Date)
	if isoDate == "" {
		isoDate = c.now().UTC().Format(time.DateOnly)
	}

	draft := Draft{
		Title:       title,
		ISODate:     isoDate,
		DisplayDate: FormatDate(isoDate),
		ImageAlt:    strings.TrimSpace(sub.ImageAlt),
		Excerpt:     Excerpt(sub.Content, c.ExcerptLength),
	}

	if sub.Image != nil {
		dataURL, err := LoadImage(ctx, sub.Image, sub.ImageType, c.Images)
		if err != nil {
			return Result{}, err
		}
		draft.ImageDataURL = dataURL
	}

	draft.ContentHTML = RenderContent(sub.Content)

	html, err := BuildArticleHTML(ctx, draft, c.Site)
	if err != nil {
		return Result{}, fmt.Errorf("render article: %w", err)
	}
	if c.Preview != nil {
		c.Preview.ShowPreview(html)
	}

	return Result{
		Filename:    Slugify(title) + ".html",
		ContentType: HTMLContentType,
		HTML:        html,
		Draft:       draft,
	}, nil
}

func (c *Composer) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// UserMessage returns the alert shown for a rejected submission, or an empty
// string when err is not a user-facing failure.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return msgMissingFields
	case errors.Is(err, ErrImageRead):
		return msgImageRead
	default:
		return ""
	}
}
