// @title Athlete Hub Backend API
// @version 1.0
// @description Athlete registration, login and profile management

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	_ "ATHLETEHUB_BACK-END/docs" // This is required for swagger
	"ATHLETEHUB_BACK-END/internal/config"
	"ATHLETEHUB_BACK-END/internal/handlers"
	"ATHLETEHUB_BACK-END/internal/logger"
	"ATHLETEHUB_BACK-END/internal/media"
	"ATHLETEHUB_BACK-END/internal/middleware"
	"ATHLETEHUB_BACK-END/internal/routes"
	"ATHLETEHUB_BACK-END/internal/service"
	"ATHLETEHUB_BACK-END/internal/store"
	"ATHLETEHUB_BACK-END/internal/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = logger.Init()
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		log.Error(ctx, "failed to load config", logger.Error(err))
		os.Exit(1)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid LOG_LEVEL; falling back to info", logger.String("log_level", cfg.LogLevel))
	}

	athletes, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	ingestor := media.NewIngestor(openUploader(ctx, cfg, log), cfg.Media.Folder)
	tokens := middleware.NewTokenIssuer(&cfg.JWT)
	profiles := service.NewProfileService(
		athletes,
		utils.NewPasswordHasher(utils.DefaultPasswordCost),
		tokens,
		ingestor,
		service.WithLogger(log.Named("profile")),
	)

	// --- HTTP Handlers ---
	mux := http.NewServeMux()
	httpLog := log.Named("http")
	routes.SetupRoutes(mux, routes.Handlers{
		Auth:     handlers.NewAuthHandler(profiles, httpLog, cfg.Server.MaxUploadBytes),
		Profile:  handlers.NewProfileHandler(profiles, httpLog, cfg.Server.MaxUploadBytes),
		Athletes: handlers.NewAthleteHandler(profiles, httpLog),
		Health:   handlers.NewHealthHandler(athletes),
	}, middleware.NewGate(tokens, athletes))

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           c.Handler(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info(ctx, "HTTP server listening", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "ListenAndServe failed", logger.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info(context.Background(), "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "server shutdown error", logger.Error(err))
	}
	log.Info(shutdownCtx, "server stopped")
}

// openStore builds the athlete store. A database that is unreachable at
// boot is logged and the server still starts; requests then fail with
// 503 until it comes back.
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) (store.AthleteStore, func()) {
	if cfg.Database.Driver == "memory" {
		log.Warn(ctx, "using in-memory athlete store; data is lost on restart")
		return store.NewMemoryStore(), func() {}
	}

	pcfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Error(ctx, "parse dsn", logger.Error(err))
		os.Exit(1)
	}
	// simple protocol is required behind PgBouncer
	pcfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	pcfg.ConnConfig.RuntimeParams["application_name"] = "athletehub-backend"
	pcfg.MaxConns = cfg.Database.MaxConns
	pcfg.MinConns = cfg.Database.MinConns
	pcfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		log.Error(ctx, "create pool", logger.Error(err))
		os.Exit(1)
	}
	pg := store.NewPostgresStore(pool)

	bootCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	if err := pg.Ping(bootCtx); err != nil {
		log.Error(ctx, "database unreachable at startup; continuing", logger.Error(err))
	} else if err := pg.Migrate(bootCtx); err != nil {
		log.Error(ctx, "apply migrations", logger.Error(err))
	} else {
		log.Info(ctx, "database connected", logger.String("host", cfg.Database.Host))
	}
	return pg, pool.Close
}

func openUploader(ctx context.Context, cfg *config.Config, log logger.Logger) media.Uploader {
	if !cfg.IsMediaConfigured() {
		return media.DisabledUploader{}
	}
	up, err := media.NewGCSUploader(ctx, cfg.Media.Bucket, cfg.Media.CredentialsFile)
	if err != nil {
		log.Error(ctx, "media store configuration failed; photo uploads disabled", logger.Error(err))
		return media.DisabledUploader{}
	}
	log.Info(ctx, "media store configured", logger.String("bucket", cfg.Media.Bucket))
	return up
}
