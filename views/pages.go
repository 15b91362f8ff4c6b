package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Screenshot is one gallery entry.
type Screenshot struct {
	URL       string
	Steamname string
}

// WelcomePage renders the landing page.
func WelcomePage(data PageData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<section class="hero">`+
				`<h1>Casual Desktop Game</h1>`+
				`<p>Blow up stuff on your desktop whenever you feel like it. `+
				`Place tools, watch the chaos unfold and share your best moments with the community.</p>`+
				`<a class="button is-primary" href="/download">Get the game</a>`+
				`</section>`)
		return err
	})
	return layout("Home", data.Flash, body)
}

// DownloadPage renders the download page with the current release link.
func DownloadPage(data PageData, downloadURL string) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w,
			`<section><h1>Download</h1>`+
				`<p>Grab the latest build of Casual Desktop Game below.</p>`); err != nil {
			return err
		}
		if downloadURL != "" {
			if _, err := fmt.Fprintf(w, `<a class="button is-primary" href="%s">Download now</a>`,
				templ.EscapeString(downloadURL)); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<p>The download is currently unavailable. Check back soon.</p>`); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
	return layout("Download", data.Flash, body)
}

// ScreenshotsPage renders the community gallery and the upload form.
func ScreenshotsPage(data PageData, screenshots []Screenshot) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section><h1>Community screenshots</h1><div class="gallery">`); err != nil {
			return err
		}
		for _, shot := range screenshots {
			if _, err := fmt.Fprintf(w,
				`<figure class="gallery-item"><img src="%s" alt="screenshot"/>`+
					`<figcaption>%s</figcaption></figure>`,
				templ.EscapeString(shot.URL), templ.EscapeString(shot.Steamname)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`</div>`+
				`<h2>Share yours</h2>`+
				`<form method="POST" action="/uploadScreenshot" enctype="multipart/form-data">`+
				`%s`+
				`<input type="file" name="screenshot" accept=".bmp" required/>`+
				`<input type="text" name="steamname" placeholder="Your Steam name" required/>`+
				`<button type="submit" class="button is-primary">Upload</button>`+
				`</form></section>`,
			csrfField(data.CSRFToken))
		return err
	})
	return layout("Screenshots", data.Flash, body)
}

// ContactPage renders the contact form.
func ContactPage(data PageData) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section><h1>Contact</h1>`+
				`<form method="POST" action="/contact">`+
				`%s`+
				`<input type="text" name="name" placeholder="Your name" required/>`+
				`<input type="email" name="email" placeholder="Your email address" required/>`+
				`<textarea name="message" placeholder="Your message" required></textarea>`+
				`<button type="submit" class="button is-primary">Send</button>`+
				`</form></section>`,
			csrfField(data.CSRFToken))
		return err
	})
	return layout("Contact", data.Flash, body)
}
