package main

import (
	"context"
	"fmt"
	"os"

	"portfolio_admin/internal/config"
	"portfolio_admin/internal/logger"
	"portfolio_admin/internal/repository"
	"portfolio_admin/internal/repository/db"
	"portfolio_admin/internal/service"

	"github.com/spf13/pflag"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: bootstrap [--config dir] [command]

Commands:
  all       migrate, admin, samples (default)
  migrate   fold legacy single-image values into the images list
  admin     create the configured admin account if it does not exist
  samples   insert sample projects into an empty portfolio`)
}

type step func(ctx context.Context, boot service.Bootstrap, cfg *config.Config, log *logger.Logger) error

var steps = map[string]step{
	"migrate": migrate,
	"admin":   seedAdmin,
	"samples": seedSamples,
}

var allSteps = []string{"migrate", "admin", "samples"}

func main() {
	configDir := pflag.StringP("config", "c", "configs", "directory holding config.yml")
	pflag.Usage = usage
	pflag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.LogLevel).Named("bootstrap")
	defer func() { _ = log.Sync() }()

	cmd := pflag.Arg(0)
	var run []string
	switch cmd {
	case "", "all":
		run = allSteps
	default:
		if _, ok := steps[cmd]; !ok {
			usage()
			os.Exit(2)
		}
		run = []string{cmd}
	}

	database, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DBPath, "err", err)
	}
	defer func() { _ = database.Close() }()

	repos := repository.NewRepository(database)
	boot := service.NewBootstrapService(repos.Auth, repos.Projects)

	ctx := context.Background()
	for _, name := range run {
		if err := steps[name](ctx, boot, cfg, log); err != nil {
			log.Errorw("bootstrap_step_failed", "step", name, "err", err)
			_ = database.Close()
			os.Exit(1)
		}
	}
}

func migrate(ctx context.Context, boot service.Bootstrap, _ *config.Config, log *logger.Logger) error {
	n, err := boot.MigrateLegacyImages(ctx)
	if err != nil {
		return err
	}
	log.Infow("legacy_images_migrated", "projects", n)
	return nil
}

func seedAdmin(ctx context.Context, boot service.Bootstrap, cfg *config.Config, log *logger.Logger) error {
	created, err := boot.SeedAdmin(ctx, service.AdminSeed{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
		Email:    cfg.Admin.Email,
	})
	if err != nil {
		return err
	}
	if created {
		log.Infow("admin_created", "username", cfg.Admin.Username)
	} else {
		log.Infow("admin_exists", "username", cfg.Admin.Username)
	}
	return nil
}

func seedSamples(ctx context.Context, boot service.Bootstrap, _ *config.Config, log *logger.Logger) error {
	n, err := boot.SeedSampleProjects(ctx)
	if err != nil {
		return err
	}
	log.Infow("sample_projects_seeded", "count", n)
	return nil
}
