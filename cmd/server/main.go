package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"research_backend/internal/app/di"
	"research_backend/internal/app/router"
	"research_backend/internal/feature/brand/adapters/vision"
	brandhandler "research_backend/internal/feature/brand/transport/handler"
	brandusecase "research_backend/internal/feature/brand/usecase"
	companyhandler "research_backend/internal/feature/company/transport/handler"
	companyusecase "research_backend/internal/feature/company/usecase"
	newshandler "research_backend/internal/feature/news/transport/handler"
	newsusecase "research_backend/internal/feature/news/usecase"
	researchadapters "research_backend/internal/feature/research/adapters"
	"research_backend/internal/feature/research/adapters/gemini"
	researchhandler "research_backend/internal/feature/research/transport/handler"
	researchusecase "research_backend/internal/feature/research/usecase"
	infradb "research_backend/internal/platform/db"
	healthhandler "research_backend/internal/platform/http/handler"
	jwtmw "research_backend/internal/platform/jwt"
	infraredis "research_backend/internal/platform/redis"
	"research_backend/internal/shared/circuitbreaker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := infradb.OpenDB(infradb.LoadConfigFromEnv())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(ctx, infraredis.LoadConfig()); err != nil {
		slog.Warn("Redis unavailable. Running without news cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
	}

	// External APIs
	finnhubClient := di.NewFinnhubClient()
	newsProvider := di.NewNewsProvider(rdb, finnhubClient)

	// Usecase
	resolver := companyusecase.NewResolver(finnhubClient)
	newsUC := newsusecase.NewNewsUsecase(resolver, newsProvider)

	handlers := router.Handlers{
		Company: companyhandler.NewCompanyHandler(resolver),
		News:    newshandler.NewNewsHandler(newsUC),
	}

	// Research: キャッシュは起動時にひとつだけ生成して注入する
	cacheCfg := di.LoadResearchCacheConfig()
	reportCache, err := di.NewResearchCache(cacheCfg)
	if err != nil {
		slog.Error("failed to create research cache", "error", err)
		os.Exit(1)
	}
	breaker := circuitbreaker.New(circuitbreaker.AIProviderConfig("gemini"))
	if generator, err := gemini.NewGeminiGenerator(ctx, gemini.LoadConfig(), breaker); err != nil {
		slog.Warn("Gemini unavailable. Research endpoints disabled.", "error", err)
	} else {
		researchUC := researchusecase.NewResearchUsecase(
			resolver,
			newsUC,
			generator,
			researchadapters.NewReportRepository(db),
			reportCache,
			cacheCfg.TTL,
		)
		handlers.Research = researchhandler.NewResearchHandler(researchUC)
	}

	// Brand detection
	if detector, err := vision.NewLogoDetector(ctx, circuitbreaker.New(circuitbreaker.AIProviderConfig("vision"))); err != nil {
		slog.Warn("Vision API unavailable. Brand detection disabled.", "error", err)
	} else {
		defer func() {
			if err := detector.Close(); err != nil {
				slog.Error("Failed to close Vision client", "error", err)
			}
		}()
		brandUC := brandusecase.NewBrandUsecase(detector, resolver, brandusecase.LoadMinConfidence())
		handlers.Brand = brandhandler.NewBrandHandler(brandUC)
	}

	// Readiness
	checks := map[string]healthhandler.Check{
		"db": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	handlers.Readiness = healthhandler.NewReadinessHandler(checks)

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := jwtmw.LoadSecret()
	if secret == "" {
		slog.Warn("JWT_SECRET is not set. /v1 requests will fail until it is configured.")
	}

	// ルータ生成
	engine := router.NewRouter(handlers, secret)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
