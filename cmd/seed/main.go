package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/yigit/coursehub/internal/app/repositories"
	"github.com/yigit/coursehub/internal/bootstrap"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/seed"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	gpaCSV := flag.String("gpa-csv", "", "import courses from a GPA dataset CSV instead of seeding the defaults")
	flag.Parse()

	if err := run(*configPath, *gpaCSV); err != nil {
		logger.Error().Err(err).Msg("Seed failed")
		os.Exit(1)
	}
}

func run(configPath, gpaCSV string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	bootstrap.ConfigureLogger(cfg)
	lgr := log.Logger

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	store, err := bootstrap.OpenStore(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer store.Close()

	load := func(ctx context.Context, courses repositories.CourseStore) (seed.Result, error) {
		if gpaCSV == "" {
			return seed.CreateDefaultCourses(ctx, courses, lgr)
		}

		f, err := os.Open(gpaCSV)
		if err != nil {
			return seed.Result{}, fmt.Errorf("failed to open %s: %w", gpaCSV, err)
		}
		defer f.Close()
		return seed.ImportGPA(ctx, courses, f, lgr)
	}

	var result seed.Result
	if store.Pool == nil {
		lgr.Warn().Msg("Seeding the in-memory store; nothing will persist")
		result, err = load(ctx, store.Repos.Courses)
	} else {
		err = db.RunInTx(ctx, store.Pool, func(ctx context.Context, tx pgx.Tx) error {
			var loadErr error
			result, loadErr = load(ctx, repositories.NewRepositories(tx).Courses)
			return loadErr
		})
	}
	if err != nil {
		return err
	}

	fmt.Printf("created %d courses, updated %d, unchanged %d, skipped %d rows\n",
		result.Created, result.Updated, result.Existing, result.Skipped)
	return nil
}
