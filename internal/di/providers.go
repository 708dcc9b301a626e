package di

import (
	"context"
	"os"

	"cftracker/internal/adapter/cache"
	"cftracker/internal/adapter/codeforces"
	"cftracker/internal/adapter/discord"
	"cftracker/internal/adapter/logging"
	"cftracker/internal/adapter/web"
	"cftracker/internal/app"
	"cftracker/internal/config"
	"cftracker/internal/domain/ports"
	"cftracker/internal/usecase"
)

func provideLogger(cfg *config.Config) *logging.SLogger {
	return logging.NewJSON(os.Stderr, cfg.LogLevel)
}

func provideSubmissionProvider(cfg *config.Config, logger ports.Logger) ports.SubmissionProvider {
	return codeforces.New(cfg.APIBaseURL, cfg.SubmissionCount, cfg.RequestTimeout, logger)
}

// provideSubmissionCache prefers Redis and falls back to an in-process cache
// when no address is configured or Redis is unreachable.
func provideSubmissionCache(ctx context.Context, cfg *config.Config, logger ports.Logger) (ports.SubmissionCache, func(), error) {
	if cfg.RedisAddr == "" {
		return cache.NewMemory(cfg.CacheTTL), func() {}, nil
	}

	redisCache, err := cache.NewRedis(ctx, cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		TTL:      cfg.CacheTTL,
	})
	if err != nil {
		logger.Warn(ctx, "redis unavailable, using in-memory cache", "error", err)
		return cache.NewMemory(cfg.CacheTTL), func() {}, nil
	}

	cleanup := func() {
		if err := redisCache.Close(); err != nil {
			logger.Error(context.Background(), "close redis", "error", err)
		}
	}
	return redisCache, cleanup, nil
}

func provideServer(cfg *config.Config, reports web.ReportSource, logger ports.Logger) *web.Server {
	return web.NewServer(cfg.HTTPAddr, reports, logger)
}

func provideNotifier(cfg *config.Config, logger ports.Logger) (ports.Notifier, error) {
	if err := cfg.ValidateDigest(); err != nil {
		return nil, err
	}
	return discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger), nil
}

func provideDigestConfig(cfg *config.Config) usecase.DigestConfig {
	return usecase.DigestConfig{Handles: cfg.Handles}
}

func provideApp(job app.Job, logger ports.Logger, cfg *config.Config) *app.App {
	return app.New(job, logger, cfg.ScheduleCron)
}
