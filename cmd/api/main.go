package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chirpnet/media-api/internal/cache"
	"github.com/chirpnet/media-api/internal/config"
	"github.com/chirpnet/media-api/internal/db"
	"github.com/chirpnet/media-api/internal/encoder"
	"github.com/chirpnet/media-api/internal/execx"
	"github.com/chirpnet/media-api/internal/handler/api"
	"github.com/chirpnet/media-api/internal/logger"
	"github.com/chirpnet/media-api/internal/migration"
	"github.com/chirpnet/media-api/internal/port"
	"github.com/chirpnet/media-api/internal/probe"
	"github.com/chirpnet/media-api/internal/renderer"
	"github.com/chirpnet/media-api/internal/repository/mariadb"
	"github.com/chirpnet/media-api/internal/runner"
	mediaSvc "github.com/chirpnet/media-api/internal/usecase/media"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx, cfg)

	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured — status caching is disabled")
	}

	photoRepo := mariadb.NewPhotoRepository(database.DB)
	videoRepo := mariadb.NewVideoRepository(database.DB)
	audioRepo := mariadb.NewAudioRepository(database.DB)

	run := execx.OSRunner{}
	prober := probe.New(cfg.FFprobePath, run)
	enc := encoder.New(cfg.FFmpegPath, run, cfg.EncoderTimeout)
	tasks := runner.New(cfg.MaxConcurrent)

	processorSvc := mediaSvc.NewProcessor(photoRepo, videoRepo, audioRepo, prober, enc, ca, cfg.TmpDir, cfg.FailedGrace)

	uploaderSvc := mediaSvc.NewUploader(photoRepo, videoRepo, audioRepo, processorSvc, tasks)
	r.Post("/api/media/upload", api.UploadHandler(uploaderSvc, cfg.MaxUploadSize))

	checkerSvc := mediaSvc.NewStatusChecker(photoRepo, videoRepo, audioRepo)
	rendererSvc := renderer.NewHTTPRenderer(ca, cfg.StatusCacheTTL)
	r.Get("/api/media/check/{id}", api.CheckStatusHandler(rendererSvc, checkerSvc))

	metadataSvc := mediaSvc.NewMetadataGetter(audioRepo)
	r.Get("/api/media/meta/{id}", api.GetMetadataHandler(metadataSvc))

	delivererSvc := mediaSvc.NewDeliverer(photoRepo, videoRepo, audioRepo)
	r.With(api.WithMediaFile()).Get("/api/media/{file}", api.DeliverHandler(delivererSvc))
	r.With(api.WithMediaFile()).Head("/api/media/{file}", api.DeliverHandler(delivererSvc))

	listenRouter(ctx, r, cfg, database, tasks)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	if cfg.RunMigrationsUp {
		if err := migration.MigrateUp(database.DB); err != nil {
			logger.Errorf(ctx, "❌  Failed to run migrations: %v", err)
			os.Exit(1)
		}
	}

	return database
}

func initRouter(ctx context.Context, cfg *config.Settings) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	if cfg.JWTSecret == "" {
		logger.Warn(ctx, "⚠️  JWT_SECRET not configured — authentication is disabled")
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(api.WithJWTAuth(cfg.JWTSecret))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database, tasks *runner.Runner) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}

	// drain in-flight pipelines before closing the database
	tasks.Wait()
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
