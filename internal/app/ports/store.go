package ports

import (
	"context"
	"time"
)

// ContactSubmission is a persisted contact form entry.
type ContactSubmission struct {
	ID        int64
	Name      string
	Address   string
	Email     string
	Message   string
	CreatedAt time.Time
}

// ScreenshotSubmission is a persisted community screenshot entry.
type ScreenshotSubmission struct {
	ID         int64
	Address    string
	Screenshot string
	Steamname  string
	CreatedAt  time.Time
}

// SubmissionStore is the persistence capability the submission services need.
// Both tables are append-only; there are no update or delete operations.
type SubmissionStore interface {
	InsertContact(ctx context.Context, submission ContactSubmission) (ContactSubmission, error)
	// LastContactByAddress returns nil when the address has never submitted.
	LastContactByAddress(ctx context.Context, address string) (*ContactSubmission, error)

	InsertScreenshot(ctx context.Context, submission ScreenshotSubmission) (ScreenshotSubmission, error)
	// LastScreenshotByAddress returns nil when the address has never uploaded.
	LastScreenshotByAddress(ctx context.Context, address string) (*ScreenshotSubmission, error)
	// RecentScreenshots returns up to limit submissions, newest id first.
	RecentScreenshots(ctx context.Context, limit int64) ([]ScreenshotSubmission, error)
}
