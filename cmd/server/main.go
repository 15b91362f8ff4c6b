package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	website "github.com/casualdesk/website"
	"github.com/casualdesk/website/internal/adapters/sqlite"
	"github.com/casualdesk/website/internal/app/services"
	"github.com/casualdesk/website/internal/config"
	"github.com/casualdesk/website/internal/db"
	"github.com/casualdesk/website/internal/server"
	"github.com/casualdesk/website/internal/server/routes"
	"github.com/casualdesk/website/internal/storage"
)

const uploadsURLPrefix = "/img/uploads"

var publicFS = website.PublicFS

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return
	}

	var dbOpts []db.Option
	if cfg.Database.LogTiming {
		dbOpts = append(dbOpts, db.WithQueryTiming())
	}
	database, err := db.New(cfg.Database.Path, dbOpts...)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	routes.ConfigureSessions(routes.SessionConfig{
		Secret:        cfg.Session.Secret,
		SecureCookies: cfg.Session.SecureCookie,
	})

	store := sqlite.NewStore(database)
	assets := storage.NewLocalStorage(cfg.Uploads.Dir, uploadsURLPrefix)
	// Spool next to, not inside, the uploads dir so in-flight files are
	// never served.
	spoolDir := filepath.Join(filepath.Dir(cfg.Uploads.Dir), "spool")

	contactService := services.NewContactService(store)
	screenshotService := services.NewScreenshotService(store, assets, spoolDir, cfg.Uploads.MaxBytes)

	srv := server.New(log, publicFS, cfg.Uploads.Dir, cfg.Uploads.MaxBytes)
	srv.RegisterRouter(routes.NewSiteRoutes(
		contactService,
		screenshotService,
		cfg.Uploads.GalleryCount,
		cfg.Site.DownloadURL,
		uploadsURLPrefix,
	))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("Starting server", "port", cfg.Server.Port)
	slog.Error("Closing server", "error", srv.Start(addr))
}
