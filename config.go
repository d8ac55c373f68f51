package postgen

import "time"

// SiteConfig holds the branding baked into every generated post.
type SiteConfig struct {
	Name           string // Site name used in titles and the header (default "Fyziodom")
	Lang           string // html lang attribute (default "sk")
	AssetBase      string // Relative prefix for site links and assets (default "../")
	ReservationURL string // Page loaded in the reservation modal
	BlogPath       string // Blog index, relative to AssetBase (default "blog.php")
	Rights         string // Footer text after the copyright year
}

// Config holds all configuration for a postgen server and composer.
type Config struct {
	Site SiteConfig

	Addr         string // Listen address (default ":3000")
	CookieSecure bool   // Set true for HTTPS
	Debug        bool   // Log at debug level

	ExcerptLength int   // Rune limit for meta descriptions (default 180)
	MaxImageSize  int64 // Upload limit in bytes (default 10MB)
	MaxImageWidth int   // Scale wider images down to this width, 0 embeds as-is
	JPEGQuality   int   // Quality for re-encoded images (default 80)

	SubmitLimit  int           // Submissions allowed per IP per window (default 30)
	SubmitWindow time.Duration // Limiter window (default 1min)
}

func (s *SiteConfig) setDefaults() {
	if s.Name == "" {
		s.Name = "Fyziodom"
	}
	if s.Lang == "" {
		s.Lang = "sk"
	}
	if s.AssetBase == "" {
		s.AssetBase = "../"
	}
	if s.ReservationURL == "" {
		s.ReservationURL = "https://krisztian-ferenc-domonkos.fyzion.sk/reservations"
	}
	if s.BlogPath == "" {
		s.BlogPath = "blog.php"
	}
	if s.Rights == "" {
		s.Rights = "Všetky práva vyhradené."
	}
}

func (c *Config) setDefaults() {
	c.Site.setDefaults()
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ExcerptLength <= 0 {
		c.ExcerptLength = DefaultExcerptLength
	}
	if c.MaxImageSize <= 0 {
		c.MaxImageSize = maxUploadSize
	}
	if c.JPEGQuality <= 0 || c.JPEGQuality > 100 {
		c.JPEGQuality = jpegQuality
	}
	if c.SubmitLimit <= 0 {
		c.SubmitLimit = 30
	}
	if c.SubmitWindow <= 0 {
		c.SubmitWindow = time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithClock replaces the clock used to date posts submitted without a date.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.Composer.Now = now
	}
}

// WithPreviewSink mirrors every generated post into sink.
func WithPreviewSink(sink PreviewSink) Option {
	return func(a *App) {
		a.Composer.Preview = sink
	}
}

// WithSubmitLimit overrides the per-IP submission rate limit.
func WithSubmitLimit(max int, window time.Duration) Option {
	return func(a *App) {
		a.Config.SubmitLimit = max
		a.Config.SubmitWindow = window
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
