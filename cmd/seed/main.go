// Command seed loads demo fixtures into the hosted backend.
//
//	go run ./cmd/seed -file cmd/seed/fixtures.yaml
//	go run ./cmd/seed -dry-run
package main

import (
	"bytes"
	"context"
	_ "embed"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nudostudio/nudo/modules/forms"
	"github.com/nudostudio/nudo/pkg/backend"
	"github.com/nudostudio/nudo/pkg/config"
	"github.com/nudostudio/nudo/pkg/environment"
	"github.com/nudostudio/nudo/pkg/logger"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

type AppConfig struct {
	App     config.App
	Log     logger.Config
	Backend backend.Config
}

func main() {
	file := flag.String("file", "", "fixtures file; the bundled demo data when empty")
	dryRun := flag.Bool("dry-run", false, "validate without writing to the backend")
	flag.Parse()

	_ = config.LoadEnv(".env.local")

	var cfg AppConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(environment.Parse(cfg.App.Env), cfg.App.Name+"-seed"),
		logger.WithConfig(cfg.Log),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *file, *dryRun, log); err != nil {
		log.Error("seed failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg AppConfig, file string, dryRun bool, log *slog.Logger) error {
	var src io.Reader = bytes.NewReader(defaultFixtures)
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	fixtures, err := LoadFixtures(src)
	if err != nil {
		return err
	}

	var dst Inserter
	if !dryRun {
		client, err := backend.New(cfg.Backend, backend.WithLogger(log))
		if err != nil {
			return err
		}
		if _, err := client.SignIn(ctx, cfg.Backend.Email, cfg.Backend.Password); err != nil {
			return err
		}
		dst = client
	}

	report, err := NewSeeder(forms.Default(), dst, log, dryRun).Run(ctx, fixtures)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "seed finished",
		slog.Any("inserted", report.Inserted),
		slog.Any("skipped", report.Skipped),
	)
	return nil
}
