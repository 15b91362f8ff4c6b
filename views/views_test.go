package views

import (
	"context"
	"strings"
	"testing"
)

func TestScreenshotsPageEscapesSteamname(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	page := ScreenshotsPage(PageData{CSRFToken: "tok"}, []Screenshot{
		{URL: "/img/uploads/abc.png", Steamname: `<script>alert("x")</script>`},
	})
	if err := page.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}

	body := sb.String()
	if strings.Contains(body, "<script>") {
		t.Error("steamname must be escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("expected the escaped steamname in the caption")
	}
	if !strings.Contains(body, `src="/img/uploads/abc.png"`) {
		t.Error("expected the gallery image source")
	}
}

func TestLayoutShowsFlashMessages(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	page := ContactPage(PageData{Flash: Flash{Error: "The name field is too short."}})
	if err := page.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}

	body := sb.String()
	if !strings.Contains(body, `notification is-danger`) {
		t.Error("expected the error notification class")
	}
	if !strings.Contains(body, "The name field is too short.") {
		t.Error("expected the flash message text")
	}
}

func TestDownloadPageWithoutURL(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	if err := DownloadPage(PageData{}, "").Render(context.Background(), &sb); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(sb.String(), "currently unavailable") {
		t.Error("expected the unavailable notice when no download url is configured")
	}
}
