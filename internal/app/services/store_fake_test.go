package services

import (
	"context"
	"sync"

	"github.com/casualdesk/website/internal/app/ports"
)

// fakeStore is an in-memory SubmissionStore for service tests.
type fakeStore struct {
	mu          sync.Mutex
	contacts    []ports.ContactSubmission
	screenshots []ports.ScreenshotSubmission
	nextID      int64
}

var _ ports.SubmissionStore = (*fakeStore)(nil)

func (f *fakeStore) InsertContact(_ context.Context, submission ports.ContactSubmission) (ports.ContactSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	submission.ID = f.nextID
	f.contacts = append(f.contacts, submission)
	return submission, nil
}

func (f *fakeStore) LastContactByAddress(_ context.Context, address string) (*ports.ContactSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var latest *ports.ContactSubmission
	for i := range f.contacts {
		c := f.contacts[i]
		if c.Address != address {
			continue
		}
		if latest == nil || c.CreatedAt.After(latest.CreatedAt) {
			latest = &c
		}
	}
	return latest, nil
}

func (f *fakeStore) InsertScreenshot(_ context.Context, submission ports.ScreenshotSubmission) (ports.ScreenshotSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	submission.ID = f.nextID
	f.screenshots = append(f.screenshots, submission)
	return submission, nil
}

func (f *fakeStore) LastScreenshotByAddress(_ context.Context, address string) (*ports.ScreenshotSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var latest *ports.ScreenshotSubmission
	for i := range f.screenshots {
		s := f.screenshots[i]
		if s.Address != address {
			continue
		}
		if latest == nil || s.CreatedAt.After(latest.CreatedAt) {
			latest = &s
		}
	}
	return latest, nil
}

func (f *fakeStore) RecentScreenshots(_ context.Context, limit int64) ([]ports.ScreenshotSubmission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]ports.ScreenshotSubmission, 0, limit)
	for i := len(f.screenshots) - 1; i >= 0 && int64(len(result)) < limit; i-- {
		result = append(result, f.screenshots[i])
	}
	return result, nil
}
