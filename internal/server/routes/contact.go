package routes

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/casualdesk/website/internal/app/services"
)

func (v *SiteRoutes) handleContactSubmit(c echo.Context) error {
	ctx := c.Request().Context()

	_, err := v.contact.Submit(ctx,
		c.RealIP(),
		c.FormValue("name"),
		c.FormValue("email"),
		c.FormValue("message"),
		time.Now(),
	)

	switch {
	case err == nil:
		addFlash(c, flashKindSuccess, "Thank you for contacting us.")
	case isRejection(err):
		addFlash(c, flashKindError, contactRejectionMessage(rejection(err)))
	default:
		slog.ErrorContext(ctx, "contact submission failed", "error", err)
		addFlash(c, flashKindError, "Something went wrong. Please try again later.")
	}

	return c.Redirect(http.StatusFound, "/contact")
}

func contactRejectionMessage(rej *services.Rejected) string {
	switch rej.Reason {
	case services.ReasonCooldown:
		return fmt.Sprintf("You must wait %s in order to contact again.", waitPhrase(rej.RetryAfter))
	case services.ReasonValidation:
		return validationMessage(rej)
	default:
		return "Your message could not be submitted."
	}
}

func validationMessage(rej *services.Rejected) string {
	switch rej.Rule {
	case "min":
		return fmt.Sprintf("The %s field is too short.", rej.Field)
	case "max":
		return fmt.Sprintf("The %s field is too long.", rej.Field)
	case "required":
		return fmt.Sprintf("The %s field is required.", rej.Field)
	default:
		return fmt.Sprintf("The %s field is invalid.", rej.Field)
	}
}

// waitPhrase renders a remaining cooldown as a human wait time, rounded up.
func waitPhrase(remaining time.Duration) string {
	if remaining >= time.Minute {
		minutes := int((remaining + time.Minute - 1) / time.Minute)
		if minutes == 1 {
			return "one minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}
	seconds := int((remaining + time.Second - 1) / time.Second)
	if seconds <= 1 {
		return "a moment"
	}
	return fmt.Sprintf("%d seconds", seconds)
}

func isRejection(err error) bool {
	var rej *services.Rejected
	return errors.As(err, &rej)
}

func rejection(err error) *services.Rejected {
	var rej *services.Rejected
	errors.As(err, &rej)
	return rej
}
