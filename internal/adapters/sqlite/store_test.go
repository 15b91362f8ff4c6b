package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/casualdesk/website/internal/app/ports"
	"github.com/casualdesk/website/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "store-test"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Errorf("close test db: %v", err)
		}
	})
	return NewStore(database)
}

func TestContactRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 500_000_000, time.UTC)
	created, err := store.InsertContact(ctx, ports.ContactSubmission{
		Name:      "Alice",
		Address:   "203.0.113.7",
		Email:     "a@b.com",
		Message:   "Hello there",
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("insert contact: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	last, err := store.LastContactByAddress(ctx, "203.0.113.7")
	if err != nil {
		t.Fatalf("last contact: %v", err)
	}
	if last == nil {
		t.Fatal("expected a record")
	}
	if last.Name != "Alice" || last.Email != "a@b.com" || last.Message != "Hello there" {
		t.Fatalf("unexpected fields: %+v", last)
	}
	if !last.CreatedAt.Equal(createdAt) {
		t.Fatalf("createdAt round trip: got %s, want %s", last.CreatedAt, createdAt)
	}
}

func TestLastContactByAddressReturnsNewest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, msg := range []string{"first one", "second one", "third one"} {
		_, err := store.InsertContact(ctx, ports.ContactSubmission{
			Name:      "Alice",
			Address:   "203.0.113.7",
			Email:     "a@b.com",
			Message:   msg,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	last, err := store.LastContactByAddress(ctx, "203.0.113.7")
	if err != nil {
		t.Fatalf("last contact: %v", err)
	}
	if last == nil || last.Message != "third one" {
		t.Fatalf("expected newest record, got %+v", last)
	}
}

func TestLastContactByAddressMissing(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	last, err := store.LastContactByAddress(context.Background(), "198.51.100.1")
	if err != nil {
		t.Fatalf("last contact: %v", err)
	}
	if last != nil {
		t.Fatalf("expected nil for unknown address, got %+v", last)
	}
}

func TestScreenshotRoundTripAndRecent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	names := []string{"aaa.png", "bbb.png", "ccc.png"}
	for i, name := range names {
		_, err := store.InsertScreenshot(ctx, ports.ScreenshotSubmission{
			Address:    "203.0.113.7",
			Screenshot: name,
			Steamname:  "Bob",
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
	}

	last, err := store.LastScreenshotByAddress(ctx, "203.0.113.7")
	if err != nil {
		t.Fatalf("last screenshot: %v", err)
	}
	if last == nil || last.Screenshot != "ccc.png" {
		t.Fatalf("expected newest screenshot, got %+v", last)
	}

	recent, err := store.RecentScreenshots(ctx, 2)
	if err != nil {
		t.Fatalf("recent screenshots: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 screenshots, got %d", len(recent))
	}
	if recent[0].Screenshot != "ccc.png" || recent[1].Screenshot != "bbb.png" {
		t.Fatalf("expected descending id order, got %q, %q", recent[0].Screenshot, recent[1].Screenshot)
	}

	missing, err := store.LastScreenshotByAddress(ctx, "198.51.100.1")
	if err != nil {
		t.Fatalf("last screenshot for unknown address: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown address, got %+v", missing)
	}
}
