package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casualdesk/website/internal/app/services"
	"github.com/casualdesk/website/views"
)

// SiteRoutes serves the public pages and the two submission endpoints.
type SiteRoutes struct {
	contact      *services.ContactService
	screenshots  *services.ScreenshotService
	galleryCount int64
	downloadURL  string
	uploadsURL   string
}

// NewSiteRoutes constructs the site routes.
func NewSiteRoutes(contact *services.ContactService, screenshots *services.ScreenshotService, galleryCount int, downloadURL, uploadsURL string) *SiteRoutes {
	return &SiteRoutes{
		contact:      contact,
		screenshots:  screenshots,
		galleryCount: int64(galleryCount),
		downloadURL:  downloadURL,
		uploadsURL:   uploadsURL,
	}
}

// RegisterRoutes registers the site routes on the server.
func (v *SiteRoutes) RegisterRoutes(s *echo.Echo) {
	s.GET("/", v.handleHome)
	s.GET("/download", v.handleDownload)
	s.GET("/screenshots", v.handleScreenshots)
	s.GET("/contact", v.handleContact)
	s.POST("/contact", v.handleContactSubmit)
	s.POST("/uploadScreenshot", v.handleScreenshotUpload)
}

func (v *SiteRoutes) handleHome(c echo.Context) error {
	return c.Render(http.StatusOK, "", views.WelcomePage(pageData(c)))
}

func (v *SiteRoutes) handleDownload(c echo.Context) error {
	return c.Render(http.StatusOK, "", views.DownloadPage(pageData(c), v.downloadURL))
}

func (v *SiteRoutes) handleContact(c echo.Context) error {
	return c.Render(http.StatusOK, "", views.ContactPage(pageData(c)))
}

func (v *SiteRoutes) handleScreenshots(c echo.Context) error {
	recent, err := v.screenshots.Recent(c.Request().Context(), v.galleryCount)
	if err != nil {
		return err
	}

	gallery := make([]views.Screenshot, 0, len(recent))
	for _, shot := range recent {
		gallery = append(gallery, views.Screenshot{
			URL:       v.uploadsURL + "/" + shot.Screenshot,
			Steamname: shot.Steamname,
		})
	}
	return c.Render(http.StatusOK, "", views.ScreenshotsPage(pageData(c), gallery))
}
