// Command worksim populates a PostgreSQL database with a synthetic
// enterprise workspace: one organization, teams, users, memberships,
// projects, sections, tasks, subtasks, and comments, with causally
// consistent timestamps. It is a one-shot batch tool, not a server.
//
// Flags:
//
//	--dry-run     generate everything without writing to DB (no DSN needed)
//	--seed        random seed (overrides config; 0 = time-based)
//	--gen-config  path to generation YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/anterra/worksim/internal/adapter/postgres"
	"github.com/anterra/worksim/internal/adapter/postgres/workspace"
	"github.com/anterra/worksim/internal/app"
	"github.com/anterra/worksim/internal/app/seeder"
	"github.com/anterra/worksim/internal/config"
)

// Compile-time interface assertion.
var _ seeder.WorkspaceBulkRepo = (*workspace.Repo)(nil)

func main() {
	dryRunFlag := flag.Bool("dry-run", false, "generate everything without writing to DB")
	seedFlag := flag.Uint64("seed", 0, "random seed (overrides config; 0 = time-based)")
	genConfigFlag := flag.String("gen-config", "", "path to generation YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)
	logger.Info("starting worksim", slog.String("version", app.BuildVersion()))

	// Load generation config.
	genCfg, err := seeder.LoadConfig(*genConfigFlag)
	if err != nil {
		logger.Error("load generation config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		genCfg.DryRun = true
	}
	if *seedFlag != 0 {
		genCfg.Seed = *seedFlag
	}

	// 30-minute context timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	var repo seeder.WorkspaceBulkRepo
	if genCfg.DryRun {
		// No database needed: the pipeline skips every write.
		repo = (*workspace.Repo)(nil)
	} else {
		if appCfg.Database.DSN == "" {
			logger.Error("DATABASE_DSN is required unless --dry-run is set")
			os.Exit(1)
		}

		if err := postgres.ApplySchema(ctx, appCfg.Database.DSN); err != nil {
			logger.Error("apply schema", slog.String("error", err.Error()))
			os.Exit(1)
		}

		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		repo = workspace.New(pool)
	}

	pipeline := seeder.NewPipeline(logger, repo, *genCfg)
	if err := pipeline.Run(ctx); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully", slog.Int("total_rows", pipeline.TotalRows()))
}
