package postgen

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (a *App) handleForm(c echo.Context) error {
	return Render(c, FormPage(a.Config.Site, FormState{CSRFToken: CsrfToken(c)}))
}

func (a *App) handleCompose(c echo.Context) error {
	if !a.limiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many submissions. Try again later.")
	}

	state := FormState{
		Title:     c.FormValue("title"),
		Date:      c.FormValue("date"),
		ImageAlt:  c.FormValue("imageAlt"),
		Content:   c.FormValue("content"),
		CSRFToken: CsrfToken(c),
	}
	sub := Submission{
		Title:    state.Title,
		Date:     state.Date,
		ImageAlt: state.ImageAlt,
		Content:  state.Content,
	}

	file, err := c.FormFile("imageFile")
	switch {
	case err == nil:
		src, err := file.Open()
		if err != nil {
			return a.rejectSubmission(c, state, fmt.Errorf("%w: %w", ErrImageRead, err))
		}
		defer src.Close()
		sub.Image = src
		sub.ImageType = file.Header.Get(echo.HeaderContentType)
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		return a.rejectSubmission(c, state, fmt.Errorf("%w: %w", ErrImageRead, err))
	}

	res, err := a.Composer.Compose(c.Request().Context(), sub)
	if err != nil {
		return a.rejectSubmission(c, state, err)
	}

	if c.FormValue("preview") != "" {
		state.Preview = res.HTML
		return Render(c, FormPage(a.Config.Site, state))
	}
	c.Logger().Infof("generated %s (%d bytes)", res.Filename, len(res.HTML))
	return Download(c, res)
}

// rejectSubmission re-renders the form with an alert for user-facing
// failures and hands everything else to the error handler.
func (a *App) rejectSubmission(c echo.Context, state FormState, err error) error {
	msg := UserMessage(err)
	if msg == "" {
		return err
	}
	c.Logger().Warnf("submission rejected: %v", err)
	state.Message = msg
	return RenderStatus(c, http.StatusUnprocessableEntity, FormPage(a.Config.Site, state))
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code == http.StatusRequestEntityTooLarge && c.Request().URL.Path == "/compose/" {
		c.Logger().Warnf("submission rejected: %v", err)
		// The body was never parsed, so only the token can be carried over.
		state := FormState{Message: msgImageRead, CSRFToken: csrfTokenOrCookie(c)}
		_ = RenderStatus(c, http.StatusUnprocessableEntity, FormPage(a.Config.Site, state))
		return
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = c.HTML(code, "<!DOCTYPE html><title>Chyba</title><p>Niečo sa pokazilo. Skús to prosím znova.</p>")
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// csrfTokenOrCookie returns the request's CSRF token. Requests rejected
// before the CSRF middleware ran fall back to the cookie, which holds the
// same value.
func csrfTokenOrCookie(c echo.Context) string {
	if token := CsrfToken(c); token != "" {
		return token
	}
	if cookie, err := c.Cookie("_csrf"); err == nil {
		return cookie.Value
	}
	return ""
}
