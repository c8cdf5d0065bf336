package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/config"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/database"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/logger"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/observability"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/citations"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/intake"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline/narrative"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/server"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/pkg/catalog"
)

// retryWithBackoff retries an operation with exponential backoff.
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting clinical guidance pipeline",
		zap.String("environment", cfg.App.Environment),
		zap.String("version", cfg.App.Version),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	store, cleanup, err := buildSessionStore(ctx, cfg, zapLog)
	if err != nil {
		zapLog.Fatal("session store init failed", zap.Error(err))
	}
	defer cleanup()

	catalog, err := buildCatalog(ctx, cfg, zapLog)
	if err != nil {
		// Guidance without a reference catalog is never served.
		zapLog.Fatal("citation catalog init failed", zap.Error(err))
	}
	zapLog.Info("citation catalog loaded",
		zap.String("version", catalog.Version()),
		zap.Int("entries", catalog.Len()),
	)

	enhancer, err := buildEnhancer(ctx, cfg, log)
	if err != nil {
		zapLog.Fatal("narrative model init failed", zap.Error(err))
	}
	if enhancer == nil {
		zapLog.Info("narrative enhancement disabled; deterministic text only")
	}

	p := pipeline.New(store, catalog, enhancer, obs, cfg.Pipeline.MaxTextLength, log)
	srv := server.New(cfg, p, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	case sig := <-quit:
		zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
}

func buildSessionStore(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) (intake.Store, func(), error) {
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute

	if cfg.Session.Backend == "memory" {
		return intake.NewMemoryStore(ttl), func() {}, nil
	}

	var redis *database.RedisClient
	err := retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		return nil, nil, err
	}
	zapLog.Info("Redis connected successfully")

	return intake.NewRedisStore(redis.GetClient(), ttl), func() { redis.Close() }, nil
}

func buildCatalog(ctx context.Context, cfg *config.Config, zapLog *zap.Logger) (*citations.Catalog, error) {
	switch cfg.Catalog.Source {
	case "builtin":
		return citations.BuiltinCatalog(), nil
	case "file":
		return loadCatalogFile(cfg.Catalog.Path)
	}

	var pg *database.PostgresClient
	err := retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		return nil, err
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// The catalog is immutable once loaded; the connection is not kept.
	return citations.LoadFromPostgres(ctx, pg.DB)
}

func loadCatalogFile(path string) (*citations.Catalog, error) {
	f, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}

	entries := make([]citations.Citation, 0, len(f.Citations))
	for _, e := range f.Citations {
		entries = append(entries, citations.Citation{
			SourceID:    e.SourceID,
			ChunkID:     e.ChunkID,
			SupportText: e.SupportText,
			Tags:        e.Tags,
		})
	}
	return citations.NewCatalog(f.Version, entries), nil
}

func buildEnhancer(ctx context.Context, cfg *config.Config, log logger.Logger) (*narrative.Enhancer, error) {
	if !cfg.Narrative.Enabled {
		return nil, nil
	}

	var model llms.Model
	var err error
	switch cfg.Narrative.Provider {
	case "openai":
		model, err = openai.New(
			openai.WithToken(cfg.Narrative.APIKey),
			openai.WithModel(cfg.Narrative.Model),
		)
	default:
		model, err = googleai.New(
			ctx,
			googleai.WithAPIKey(cfg.Narrative.APIKey),
			googleai.WithDefaultModel(cfg.Narrative.Model),
		)
	}
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.Narrative.TimeoutMS) * time.Millisecond
	return narrative.NewEnhancer(model, timeout, log), nil
}
