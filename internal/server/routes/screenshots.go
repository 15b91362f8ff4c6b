package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/casualdesk/website/internal/app/services"
)

func (v *SiteRoutes) handleScreenshotUpload(c echo.Context) error {
	ctx := c.Request().Context()

	header, err := c.FormFile("screenshot")
	if err != nil {
		addFlash(c, flashKindError, "Please choose a screenshot to upload.")
		return c.Redirect(http.StatusFound, "/screenshots")
	}

	file, err := header.Open()
	if err != nil {
		slog.ErrorContext(ctx, "failed to open uploaded screenshot", "error", err)
		addFlash(c, flashKindError, "Something went wrong. Please try again later.")
		return c.Redirect(http.StatusFound, "/screenshots")
	}
	defer file.Close()

	_, err = v.screenshots.Submit(ctx,
		c.RealIP(),
		file,
		c.FormValue("steamname"),
		time.Now(),
	)

	switch {
	case err == nil:
		addFlash(c, flashKindSuccess, "Thank you! Your screenshot has been added to the gallery.")
	case isRejection(err):
		addFlash(c, flashKindError, screenshotRejectionMessage(rejection(err)))
	default:
		slog.ErrorContext(ctx, "screenshot submission failed", "error", err)
		addFlash(c, flashKindError, "Something went wrong. Please try again later.")
	}

	return c.Redirect(http.StatusFound, "/screenshots")
}

func screenshotRejectionMessage(rej *services.Rejected) string {
	switch rej.Reason {
	case services.ReasonCooldown:
		return fmt.Sprintf("You must wait %s before uploading another screenshot.", waitPhrase(rej.RetryAfter))
	case services.ReasonDecode:
		return "The uploaded file is not a valid BMP screenshot."
	case services.ReasonValidation:
		if rej.Field == "screenshot" {
			return "The uploaded screenshot is too large."
		}
		return validationMessage(rej)
	default:
		return "Your screenshot could not be uploaded."
	}
}
