package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/casualdesk/website/internal/app/ports"
	"github.com/casualdesk/website/internal/imaging"
	"github.com/casualdesk/website/internal/storage"
)

// ScreenshotCooldown is the minimum time between two uploads from the same
// address.
const ScreenshotCooldown = time.Minute

const steamnameMax = 256

// ScreenshotService ingests community screenshot uploads and serves the
// gallery query.
type ScreenshotService struct {
	store    ports.SubmissionStore
	assets   storage.Storage
	spoolDir string
	maxBytes int64
	locks    *keyedMutex
}

// NewScreenshotService constructs a ScreenshotService. Uploads are spooled to
// spoolDir during conversion; converted PNGs go to assets. Uploads larger
// than maxBytes are rejected.
func NewScreenshotService(store ports.SubmissionStore, assets storage.Storage, spoolDir string, maxBytes int64) *ScreenshotService {
	return &ScreenshotService{
		store:    store,
		assets:   assets,
		spoolDir: spoolDir,
		maxBytes: maxBytes,
		locks:    newKeyedMutex(),
	}
}

// Submit converts and stores one uploaded screenshot for the given client
// address. It returns a *Rejected error on cooldown, oversized or
// undecodable uploads, and invalid steamname; any other error is an I/O or
// persistence failure. The spooled upload is removed on every path.
func (s *ScreenshotService) Submit(ctx context.Context, address string, upload io.Reader, steamname string, now time.Time) (ports.ScreenshotSubmission, error) {
	unlock := s.locks.lock(address)
	defer unlock()

	last, err := s.store.LastScreenshotByAddress(ctx, address)
	if err != nil {
		return ports.ScreenshotSubmission{}, fmt.Errorf("load last screenshot submission: %w", err)
	}
	if !MayProceed(lastUploadedAt(last), ScreenshotCooldown, now) {
		return ports.ScreenshotSubmission{}, &Rejected{
			Reason:     ReasonCooldown,
			RetryAfter: ScreenshotCooldown - now.Sub(last.CreatedAt),
		}
	}

	spool, err := s.spoolUpload(upload)
	if err != nil {
		return ports.ScreenshotSubmission{}, err
	}
	defer os.Remove(spool)

	raw, err := os.ReadFile(spool)
	if err != nil {
		return ports.ScreenshotSubmission{}, fmt.Errorf("read spooled upload: %w", err)
	}

	converted, err := imaging.Convert(raw)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedFormat) {
			return ports.ScreenshotSubmission{}, &Rejected{Reason: ReasonDecode}
		}
		return ports.ScreenshotSubmission{}, fmt.Errorf("convert screenshot: %w", err)
	}

	if steamname == "" {
		return ports.ScreenshotSubmission{}, &Rejected{Reason: ReasonValidation, Field: "steamname", Rule: "required"}
	}
	if utf8.RuneCountInString(steamname) > steamnameMax {
		return ports.ScreenshotSubmission{}, &Rejected{Reason: ReasonValidation, Field: "steamname", Rule: "max"}
	}

	if _, err := s.assets.Save(ctx, converted.Filename, bytes.NewReader(converted.Data)); err != nil {
		return ports.ScreenshotSubmission{}, fmt.Errorf("store converted screenshot: %w", err)
	}

	created, err := s.store.InsertScreenshot(ctx, ports.ScreenshotSubmission{
		Address:    address,
		Screenshot: converted.Filename,
		Steamname:  steamname,
		CreatedAt:  now,
	})
	if err != nil {
		return ports.ScreenshotSubmission{}, fmt.Errorf("insert screenshot submission: %w", err)
	}
	return created, nil
}

// Recent returns up to limit screenshots, most recently created first.
func (s *ScreenshotService) Recent(ctx context.Context, limit int64) ([]ports.ScreenshotSubmission, error) {
	if limit <= 0 {
		return nil, nil
	}
	return s.store.RecentScreenshots(ctx, limit)
}

// spoolUpload writes the upload to a uniquely named file under spoolDir,
// enforcing the size cap. On any failure the partial file is removed before
// returning.
func (s *ScreenshotService) spoolUpload(upload io.Reader) (path string, err error) {
	if err := os.MkdirAll(s.spoolDir, 0o755); err != nil {
		return "", fmt.Errorf("create spool dir: %w", err)
	}

	name := filepath.Join(s.spoolDir, "upload-"+uuid.NewString()+".bmp")
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("create spool file: %w", err)
	}
	defer func() {
		f.Close()
		if err != nil {
			os.Remove(name)
		}
	}()

	written, err := io.CopyN(f, upload, s.maxBytes+1)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("spool upload: %w", err)
	}
	if written > s.maxBytes {
		return "", &Rejected{Reason: ReasonValidation, Field: "screenshot", Rule: "max"}
	}

	return name, nil
}

func lastUploadedAt(s *ports.ScreenshotSubmission) *time.Time {
	if s == nil {
		return nil
	}
	return &s.CreatedAt
}
