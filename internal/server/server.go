package server

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"

	"github.com/casualdesk/website/internal/renderer"
)

// RouteRegister registers Echo routes.
type RouteRegister interface {
	RegisterRoutes(s *echo.Echo)
}

// Server holds the Echo instance.
type Server struct {
	e *echo.Echo
}

// New creates a new server instance. uploadsDir is served under /img/uploads
// so stored screenshots resolve at their gallery URLs.
func New(log *slog.Logger, publicFS embed.FS, uploadsDir string, maxUploadBytes int64) *Server {
	e := echo.New()

	e.Renderer = &renderer.Renderer{}
	e.HideBanner = true
	e.HidePort = true

	e.Use(slogecho.New(log))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		Limit: bodyLimit(maxUploadBytes),
	}))
	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup: "header:X-CSRF-Token,form:_csrf",
	}))

	e.StaticFS("/", echo.MustSubFS(publicFS, "public"))
	e.Static("/img/uploads", uploadsDir)

	return &Server{
		e: e,
	}
}

// RegisterRouter attaches a route registrar.
func (s *Server) RegisterRouter(r RouteRegister) {
	r.RegisterRoutes(s.e)
}

// Start runs the HTTP server.
func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// bodyLimit leaves headroom above the raw upload cap for multipart framing
// and the other form fields.
func bodyLimit(maxUploadBytes int64) string {
	const mb = int64(1 << 20)
	limit := maxUploadBytes + mb
	return fmt.Sprintf("%dM", (limit+mb-1)/mb)
}
