package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Session     SessionConfig
	Uploads     UploadsConfig
	Site        SiteConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Path      string
	LogTiming bool
}

type SessionConfig struct {
	Secret       string
	SecureCookie bool
}

type UploadsConfig struct {
	Dir      string
	MaxBytes int64
	// GalleryCount is how many screenshots the gallery page shows.
	GalleryCount int
}

type SiteConfig struct {
	AppURL      string
	DownloadURL string
}

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("cdg_env", "")
	v.SetDefault("cdg_port", 8080)
	v.SetDefault("cdg_db_path", "data/cdgsite")
	v.SetDefault("cdg_db_timing", false)
	v.SetDefault("cdg_session_secret", "")
	v.SetDefault("cdg_secure_cookie", false)
	v.SetDefault("cdg_uploads_dir", "data/uploads")
	v.SetDefault("cdg_max_upload_bytes", 5<<20)
	v.SetDefault("cdg_screenshots_lastcount", 20)
	v.SetDefault("cdg_app_url", "")
	v.SetDefault("cdg_download_url", "")

	port := v.GetInt("cdg_port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid CDG_PORT: %d", port)
	}

	maxUpload := v.GetInt64("cdg_max_upload_bytes")
	if maxUpload <= 0 {
		maxUpload = 5 << 20
	}

	galleryCount := v.GetInt("cdg_screenshots_lastcount")
	if galleryCount <= 0 {
		galleryCount = 20
	}

	cfg := Config{
		Environment: strings.ToLower(strings.TrimSpace(v.GetString("cdg_env"))),
		Server:      ServerConfig{Port: port},
		Database: DatabaseConfig{
			Path:      strings.TrimSpace(v.GetString("cdg_db_path")),
			LogTiming: v.GetBool("cdg_db_timing"),
		},
		Session: SessionConfig{
			Secret:       strings.TrimSpace(v.GetString("cdg_session_secret")),
			SecureCookie: v.GetBool("cdg_secure_cookie"),
		},
		Uploads: UploadsConfig{
			Dir:          strings.TrimSpace(v.GetString("cdg_uploads_dir")),
			MaxBytes:     maxUpload,
			GalleryCount: galleryCount,
		},
		Site: SiteConfig{
			AppURL:      strings.TrimSpace(v.GetString("cdg_app_url")),
			DownloadURL: strings.TrimSpace(v.GetString("cdg_download_url")),
		},
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/cdgsite"
	}
	if cfg.Uploads.Dir == "" {
		cfg.Uploads.Dir = "data/uploads"
	}
	if cfg.Session.Secret == "" {
		if !cfg.IsLocalDevelopment() {
			return Config{}, fmt.Errorf("CDG_SESSION_SECRET is required outside local/dev environments")
		}
		cfg.Session.Secret = "cdgsite-local-dev"
	}

	return cfg, nil
}

func (c Config) IsLocalDevelopment() bool {
	switch c.Environment {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}
