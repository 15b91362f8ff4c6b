package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "data/cdgsite" {
		t.Errorf("db path: got %q", cfg.Database.Path)
	}
	if cfg.Uploads.Dir != "data/uploads" {
		t.Errorf("uploads dir: got %q", cfg.Uploads.Dir)
	}
	if cfg.Uploads.MaxBytes != 5<<20 {
		t.Errorf("max upload bytes: got %d", cfg.Uploads.MaxBytes)
	}
	if cfg.Uploads.GalleryCount != 20 {
		t.Errorf("gallery count: got %d", cfg.Uploads.GalleryCount)
	}
	if !cfg.IsLocalDevelopment() {
		t.Error("expected empty environment to count as local development")
	}
	if cfg.Session.Secret == "" {
		t.Error("expected a dev fallback session secret")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CDG_ENV", "production")
	t.Setenv("CDG_PORT", "9090")
	t.Setenv("CDG_DB_PATH", "/var/lib/cdg/site")
	t.Setenv("CDG_SESSION_SECRET", "s3cret")
	t.Setenv("CDG_UPLOADS_DIR", "/srv/uploads")
	t.Setenv("CDG_SCREENSHOTS_LASTCOUNT", "8")
	t.Setenv("CDG_DOWNLOAD_URL", "https://example.com/game.zip")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Environment != "production" {
		t.Errorf("environment: got %q", cfg.Environment)
	}
	if cfg.IsLocalDevelopment() {
		t.Error("production must not count as local development")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port: got %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "/var/lib/cdg/site" {
		t.Errorf("db path: got %q", cfg.Database.Path)
	}
	if cfg.Session.Secret != "s3cret" {
		t.Errorf("session secret: got %q", cfg.Session.Secret)
	}
	if cfg.Uploads.Dir != "/srv/uploads" {
		t.Errorf("uploads dir: got %q", cfg.Uploads.Dir)
	}
	if cfg.Uploads.GalleryCount != 8 {
		t.Errorf("gallery count: got %d", cfg.Uploads.GalleryCount)
	}
	if cfg.Site.DownloadURL != "https://example.com/game.zip" {
		t.Errorf("download url: got %q", cfg.Site.DownloadURL)
	}
}

func TestLoadRequiresSecretInProduction(t *testing.T) {
	t.Setenv("CDG_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when CDG_SESSION_SECRET is unset in production")
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("CDG_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an out-of-range port")
	}
}

func TestLoadFallsBackOnNonPositiveLimits(t *testing.T) {
	t.Setenv("CDG_MAX_UPLOAD_BYTES", "0")
	t.Setenv("CDG_SCREENSHOTS_LASTCOUNT", "-3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Uploads.MaxBytes != 5<<20 {
		t.Errorf("max upload bytes: got %d, want default", cfg.Uploads.MaxBytes)
	}
	if cfg.Uploads.GalleryCount != 20 {
		t.Errorf("gallery count: got %d, want default", cfg.Uploads.GalleryCount)
	}
}
