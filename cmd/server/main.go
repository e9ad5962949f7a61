package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/consultbridge/marketplace-api/internal/api"
	"github.com/consultbridge/marketplace-api/internal/core/domain"
	"github.com/consultbridge/marketplace-api/internal/core/ports"
	"github.com/consultbridge/marketplace-api/internal/core/service"
	"github.com/consultbridge/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/consultbridge/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/consultbridge/marketplace-api/internal/infrastructure/db/redis"
	"github.com/consultbridge/marketplace-api/internal/infrastructure/fixtures"
	"github.com/consultbridge/marketplace-api/internal/infrastructure/store"
	"github.com/consultbridge/marketplace-api/pkg/logger"
)

// @title          ConsultBridge Marketplace API
// @version        1.0
// @description    Directory of consultants, project listings and inquiries.
// @BasePath       /
// @securityDefinitions.apikey BearerAuth
// @in             header
// @name           Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("store", cfg.StoreDriver).Msg("starting marketplace api")

	var (
		kv      ports.KV
		cleanup func(context.Context)
	)
	switch cfg.StoreDriver {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connect failed")
		}
		kv = mongodb.NewKV(db)
		cleanup = func(ctx context.Context) { _ = client.Disconnect(ctx) }
	default:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		kv = redisdb.NewKV(client)
		cleanup = func(context.Context) { _ = client.Close() }
	}

	consultants := store.NewCollection[domain.Consultant](kv, store.Consultants, log)
	projects := store.NewCollection[domain.Project](kv, store.Projects, log)
	inquiries := store.NewCollection[domain.Inquiry](kv, store.Inquiries, log)

	seeder := service.NewSeedService(
		fixtures.NewHTTPSource(cfg.Seed.FixturesBaseURL),
		consultants, projects, inquiries,
		kv, store.VersionKey, cfg.Seed.Version,
		log,
	)
	// A failed seed is not fatal: the instance comes up unseeded and the
	// moderation surface can retry via POST /v1/admin/seed.
	if err := seeder.EnsureSeeded(ctx); err != nil {
		log.Error().Err(err).Msg("startup seed failed, serving unseeded")
	}

	deps := api.Dependencies{
		Consultants: service.NewConsultantService(consultants, log),
		Projects:    service.NewProjectService(projects, log),
		Inquiries:   service.NewInquiryService(inquiries, consultants, projects, log),
		Admin: service.NewAdminService(
			cfg.AdminPasscode, cfg.AdminPasscodeHash, cfg.JWTSecret,
			12*time.Hour,
			consultants, projects, inquiries,
			log,
		),
		Seeder:    seeder,
		KV:        kv,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	}
	e := api.NewRouter(deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	cleanup(shutdownCtx)
	log.Info().Msg("server exited")
}
