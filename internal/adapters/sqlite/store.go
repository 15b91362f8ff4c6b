// Package sqlite adapts the sqlc-backed database to the application's
// SubmissionStore port.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/casualdesk/website/internal/app/ports"
	"github.com/casualdesk/website/internal/db/queries"
)

// storeDatabase is the narrow slice of the database this adapter needs.
type storeDatabase interface {
	CreateContactSubmission(ctx context.Context, arg queries.CreateContactSubmissionParams) (queries.ContactSubmission, error)
	GetLatestContactSubmissionByAddress(ctx context.Context, address string) (queries.ContactSubmission, error)
	CreateScreenshotSubmission(ctx context.Context, arg queries.CreateScreenshotSubmissionParams) (queries.ScreenshotSubmission, error)
	GetLatestScreenshotSubmissionByAddress(ctx context.Context, address string) (queries.ScreenshotSubmission, error)
	ListRecentScreenshotSubmissions(ctx context.Context, limit int64) ([]queries.ScreenshotSubmission, error)
}

// Store implements ports.SubmissionStore over SQLite.
type Store struct {
	db storeDatabase
}

// NewStore wraps the database in a SubmissionStore.
func NewStore(db storeDatabase) *Store {
	return &Store{db: db}
}

var _ ports.SubmissionStore = (*Store)(nil)

// Timestamps are stored as RFC 3339 UTC text; SQLite has no native timestamp
// type and lexicographic order must match chronological order, so the
// fractional part is written fixed-width (RFC3339Nano strips trailing zeros).
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func (s *Store) InsertContact(ctx context.Context, submission ports.ContactSubmission) (ports.ContactSubmission, error) {
	row, err := s.db.CreateContactSubmission(ctx, queries.CreateContactSubmissionParams{
		Name:      submission.Name,
		Address:   submission.Address,
		Email:     submission.Email,
		Message:   submission.Message,
		CreatedAt: submission.CreatedAt.UTC().Format(timeLayout),
	})
	if err != nil {
		return ports.ContactSubmission{}, err
	}
	return mapContact(row)
}

func (s *Store) LastContactByAddress(ctx context.Context, address string) (*ports.ContactSubmission, error) {
	row, err := s.db.GetLatestContactSubmissionByAddress(ctx, address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	mapped, err := mapContact(row)
	if err != nil {
		return nil, err
	}
	return &mapped, nil
}

func (s *Store) InsertScreenshot(ctx context.Context, submission ports.ScreenshotSubmission) (ports.ScreenshotSubmission, error) {
	row, err := s.db.CreateScreenshotSubmission(ctx, queries.CreateScreenshotSubmissionParams{
		Address:    submission.Address,
		Screenshot: submission.Screenshot,
		Steamname:  submission.Steamname,
		CreatedAt:  submission.CreatedAt.UTC().Format(timeLayout),
	})
	if err != nil {
		return ports.ScreenshotSubmission{}, err
	}
	return mapScreenshot(row)
}

func (s *Store) LastScreenshotByAddress(ctx context.Context, address string) (*ports.ScreenshotSubmission, error) {
	row, err := s.db.GetLatestScreenshotSubmissionByAddress(ctx, address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	mapped, err := mapScreenshot(row)
	if err != nil {
		return nil, err
	}
	return &mapped, nil
}

func (s *Store) RecentScreenshots(ctx context.Context, limit int64) ([]ports.ScreenshotSubmission, error) {
	rows, err := s.db.ListRecentScreenshotSubmissions(ctx, limit)
	if err != nil {
		return nil, err
	}
	result := make([]ports.ScreenshotSubmission, 0, len(rows))
	for _, row := range rows {
		mapped, err := mapScreenshot(row)
		if err != nil {
			return nil, err
		}
		result = append(result, mapped)
	}
	return result, nil
}

func mapContact(row queries.ContactSubmission) (ports.ContactSubmission, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return ports.ContactSubmission{}, fmt.Errorf("contact submission %d: %w", row.ID, err)
	}
	return ports.ContactSubmission{
		ID:        row.ID,
		Name:      row.Name,
		Address:   row.Address,
		Email:     row.Email,
		Message:   row.Message,
		CreatedAt: createdAt,
	}, nil
}

func mapScreenshot(row queries.ScreenshotSubmission) (ports.ScreenshotSubmission, error) {
	createdAt, err := parseTime(row.CreatedAt)
	if err != nil {
		return ports.ScreenshotSubmission{}, fmt.Errorf("screenshot submission %d: %w", row.ID, err)
	}
	return ports.ScreenshotSubmission{
		ID:         row.ID,
		Address:    row.Address,
		Screenshot: row.Screenshot,
		Steamname:  row.Steamname,
		CreatedAt:  createdAt,
	}, nil
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created_at %q: %w", value, err)
	}
	return t, nil
}
