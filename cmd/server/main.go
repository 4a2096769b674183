package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	httpadapter "github.com/Bhaskar0624/FUTURE-FS-01/internal/adapter/http"
	repo "github.com/Bhaskar0624/FUTURE-FS-01/internal/adapter/repository"
	"github.com/Bhaskar0624/FUTURE-FS-01/internal/config"
	"github.com/Bhaskar0624/FUTURE-FS-01/internal/infrastructure/migration"
	"github.com/Bhaskar0624/FUTURE-FS-01/internal/usecase"
	infra "github.com/Bhaskar0624/FUTURE-FS-01/pkg/infrastructure"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration error")
	}

	ctx := context.Background()

	// persistence setup
	var store usecase.Store
	if cfg.DatabaseURL != "" {
		if err := migration.Run(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}
		pool, err := infra.NewContentPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("content DB not available")
		}
		defer pool.Close()
		store = repo.NewPostgresStore(pool)
		log.Info().Msg("using postgres store")
	} else {
		fs, err := repo.NewFileStore(cfg.DataFile)
		if err != nil {
			log.Fatal().Err(err).Msg("data file not available")
		}
		store = fs
		log.Info().Str("path", cfg.DataFile).Msg("no DATABASE_URL, using JSON file store")
	}

	blobs, err := infra.NewDiskStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("upload dir not available")
	}

	content := usecase.NewContentService(store, log)
	sessions := usecase.NewSessionManager(cfg.AdminPassword, cfg.AdminPasswordHash)
	uploader := usecase.NewUploader(blobs, log)

	app := fiber.New(fiber.Config{
		AppName:   "portfolio-api",
		BodyLimit: int(cfg.MaxUploadBytes) + 1<<20,
	})
	app.Use(httpadapter.RequestLogger(log))
	app.Static("/uploads", cfg.UploadDir)

	h := httpadapter.NewHandler(content, sessions, uploader, cfg.MaxUploadBytes, log)
	h.Register(app)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
