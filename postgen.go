// Package postgen turns article text and an optional image into a
// self-contained static HTML blog post.
//
// The pure helpers (Slugify, FormatDate, Excerpt, EscapeAttr, RenderContent)
// and the Composer can be used on their own. App wraps them in an Echo
// server that serves an editor form and returns each post as a download.
package postgen

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// App is the postgen web application. It wires together the composer,
// limiter, middleware and handlers.
type App struct {
	Config   Config
	Echo     *echo.Echo
	Composer *Composer

	limiter      *SubmitLimiter
	customRoutes []func(*App)
}

// New creates an App with middleware and routes installed. The returned
// App can be served with Start or used directly as an http.Handler via Echo.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	a.Composer = NewComposer(cfg)

	for _, opt := range opts {
		opt(a)
	}

	a.limiter = NewSubmitLimiter(a.Config.SubmitLimit, a.Config.SubmitWindow)

	a.Echo.HideBanner = true
	if a.Config.Debug {
		a.Echo.Logger.SetLevel(log.DEBUG)
	} else {
		a.Echo.Logger.SetLevel(log.INFO)
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/public/*", echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(embeddedFS)))))

	e.GET("/healthz", handleHealth)
	e.GET("/", a.handleForm)
	e.POST("/compose/", a.handleCompose)
}

// Start serves the app on Config.Addr until the server is shut down.
func (a *App) Start() error {
	a.Echo.Logger.Infof("postgen listening on %s", a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully and releases background resources.
func (a *App) Shutdown(ctx context.Context) error {
	a.limiter.Stop()
	return a.Echo.Shutdown(ctx)
}

// Close releases background resources without touching the listener.
func (a *App) Close() error {
	a.limiter.Stop()
	return nil
}

// ConfigFromEnv builds a Config from POSTGEN_* environment variables.
// Unset values are left for setDefaults.
func ConfigFromEnv() Config {
	return Config{
		Site: SiteConfig{
			Name:           os.Getenv("POSTGEN_SITE_NAME"),
			Lang:           os.Getenv("POSTGEN_SITE_LANG"),
			AssetBase:      os.Getenv("POSTGEN_ASSET_BASE"),
			ReservationURL: os.Getenv("POSTGEN_RESERVATION_URL"),
		},
		Addr:          EnvOr("POSTGEN_ADDR", ":3000"),
		CookieSecure:  envBool("POSTGEN_COOKIE_SECURE"),
		Debug:         envBool("POSTGEN_DEBUG"),
		MaxImageSize:  int64(envInt("POSTGEN_MAX_IMAGE_SIZE", maxUploadSize)),
		MaxImageWidth: envInt("POSTGEN_MAX_IMAGE_WIDTH", 0),
		SubmitLimit:   envInt("POSTGEN_SUBMIT_LIMIT", 30),
		SubmitWindow:  time.Minute,
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
