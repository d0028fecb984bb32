// Command server runs the storefront API.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"

	"github.com/nudostudio/nudo/modules/forms"
	"github.com/nudostudio/nudo/modules/storefront"
	"github.com/nudostudio/nudo/pkg/backend"
	"github.com/nudostudio/nudo/pkg/config"
	"github.com/nudostudio/nudo/pkg/email"
	"github.com/nudostudio/nudo/pkg/environment"
	"github.com/nudostudio/nudo/pkg/httpserver"
	"github.com/nudostudio/nudo/pkg/logger"
	"github.com/nudostudio/nudo/pkg/ratelimiter"
	"github.com/nudostudio/nudo/pkg/redis"
	"github.com/nudostudio/nudo/pkg/requestid"
)

type AppConfig struct {
	App        config.App
	Log        logger.Config
	HTTP       httpserver.Config
	Redis      redis.Config
	RateLimit  ratelimiter.Config
	Email      email.Config
	Backend    backend.Config
	Storefront storefront.Config
}

func main() {
	_ = config.LoadEnv(".env.local")

	var cfg AppConfig
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.App.Env)
	log := logger.New(
		logger.WithEnvironment(env, cfg.App.Name),
		logger.WithConfig(cfg.Log),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, env, log); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg AppConfig, env environment.Environment, log *slog.Logger) error {
	var checks []httpserver.Check

	var store ratelimiter.Store
	if cfg.Redis.URL != "" {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		store = ratelimiter.NewRedisStore(client)
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
	} else {
		mem := ratelimiter.NewMemoryStore()
		defer mem.Close()
		store = mem
		log.Warn("REDIS_URL not set, rate limits are per process")
	}

	limiter, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		return err
	}

	sender, err := email.NewSender(cfg.Email, log)
	if err != nil {
		return err
	}
	mailer := email.NewMailer(sender, cfg.Email.StudioEmail, log)

	opts := []storefront.Option{
		storefront.WithLogger(log),
		storefront.WithRateLimiter(limiter),
	}
	if cfg.Backend.Enabled() {
		client, err := backend.New(cfg.Backend, backend.WithLogger(log))
		if err != nil {
			return err
		}
		if _, err := client.SignIn(ctx, cfg.Backend.Email, cfg.Backend.Password); err != nil {
			return err
		}
		opts = append(opts, storefront.WithBackend(client))
		checks = append(checks, httpserver.Check{Name: "backend", Fn: client.Healthcheck})
	} else {
		log.Warn("BACKEND_URL not set, submissions are only emailed")
	}

	svc, err := storefront.NewService(cfg.Storefront, forms.Default(), mailer, opts...)
	if err != nil {
		return err
	}
	// Flush queued emails before exiting.
	defer svc.Wait()

	r := chi.NewRouter()
	r.Use(requestid.Middleware, environment.Middleware(env))
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, checks...))
	r.Mount("/api", svc.Handle())

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
