// Package views holds the site's templ components. They are code-only
// components (templ.ComponentFunc) rather than generated .templ files, so the
// repository builds without the templ generator.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Flash carries the one-shot status messages shown under the navbar.
type Flash struct {
	Success string
	Error   string
}

// PageData is shared by every page render.
type PageData struct {
	CSRFToken string
	Flash     Flash
}

const siteTitle = "Casual Desktop Game"

// layout wraps body in the shared chrome: head, navbar, flash banner, footer.
func layout(title string, flash Flash, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`+
				`<meta name="viewport" content="width=device-width, initial-scale=1"/>`+
				`<title>%s - %s</title>`+
				`<link rel="stylesheet" type="text/css" href="/css/site.css"/>`+
				`</head><body>`,
			templ.EscapeString(siteTitle), templ.EscapeString(title)); err != nil {
			return err
		}
		if err := navbar().Render(ctx, w); err != nil {
			return err
		}
		if err := flashBanner(flash).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`</main><footer class="footer"><p>%s</p></footer></body></html>`,
			templ.EscapeString(siteTitle))
		return err
	})
}

func navbar() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<nav class="navbar">`+
				`<a href="/" class="navbar-item">Home</a>`+
				`<a href="/download" class="navbar-item">Download</a>`+
				`<a href="/screenshots" class="navbar-item">Screenshots</a>`+
				`<a href="/contact" class="navbar-item">Contact</a>`+
				`</nav>`)
		return err
	})
}

func flashBanner(flash Flash) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if flash.Success != "" {
			if _, err := fmt.Fprintf(w, `<div class="notification is-success">%s</div>`,
				templ.EscapeString(flash.Success)); err != nil {
				return err
			}
		}
		if flash.Error != "" {
			if _, err := fmt.Fprintf(w, `<div class="notification is-danger">%s</div>`,
				templ.EscapeString(flash.Error)); err != nil {
				return err
			}
		}
		return nil
	})
}

func csrfField(token string) string {
	return fmt.Sprintf(`<input type="hidden" name="_csrf" value="%s"/>`, templ.EscapeString(token))
}
