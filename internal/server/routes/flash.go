package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"github.com/casualdesk/website/views"
)

const (
	flashSessionName = "cdg-flash"
	flashKindSuccess = "success"
	flashKindError   = "error"
)

// SessionConfig configures the cookie session store used for flash messages.
type SessionConfig struct {
	Secret        string
	SecureCookies bool
}

var sessionStore *sessions.CookieStore

// ConfigureSessions initializes the cookie session store. Must be called
// before any route handles a request.
func ConfigureSessions(config SessionConfig) {
	store := sessions.NewCookieStore([]byte(config.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   config.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	sessionStore = store
}

func addFlash(c echo.Context, kind, message string) {
	session, err := sessionStore.Get(c.Request(), flashSessionName)
	if err != nil {
		// A stale or tampered cookie; Get still returns a usable session.
		slog.DebugContext(c.Request().Context(), "flash session reset", "error", err)
	}
	session.AddFlash(message, kind)
	if err := session.Save(c.Request(), c.Response()); err != nil {
		slog.WarnContext(c.Request().Context(), "failed to save flash session", "error", err)
	}
}

// popFlash drains pending flash messages; reading flashes consumes them, so
// the session is saved afterwards.
func popFlash(c echo.Context) views.Flash {
	session, err := sessionStore.Get(c.Request(), flashSessionName)
	if err != nil {
		slog.DebugContext(c.Request().Context(), "flash session reset", "error", err)
	}

	var flash views.Flash
	if msgs := session.Flashes(flashKindSuccess); len(msgs) > 0 {
		if msg, ok := msgs[0].(string); ok {
			flash.Success = msg
		}
	}
	if msgs := session.Flashes(flashKindError); len(msgs) > 0 {
		if msg, ok := msgs[0].(string); ok {
			flash.Error = msg
		}
	}

	if err := session.Save(c.Request(), c.Response()); err != nil {
		slog.WarnContext(c.Request().Context(), "failed to save flash session", "error", err)
	}
	return flash
}

func csrfToken(c echo.Context) string {
	token, _ := c.Get("csrf").(string)
	return token
}

func pageData(c echo.Context) views.PageData {
	return views.PageData{
		CSRFToken: csrfToken(c),
		Flash:     popFlash(c),
	}
}
