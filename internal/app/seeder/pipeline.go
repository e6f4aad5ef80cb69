package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/anterra/worksim/internal/app/seeder/chrono"
	"github.com/anterra/worksim/internal/app/seeder/text"
	"github.com/anterra/worksim/internal/domain"
)

// allStages lists the canonical execution order. Every stage depends on the
// output of the ones before it, so there is no subset execution.
var allStages = []string{
	"organization", "teams", "users", "memberships",
	"projects", "sections", "tasks", "subtasks", "comments",
}

// StageResult holds the outcome of a single pipeline stage.
type StageResult struct {
	Rows     int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the 9-stage generation process. One random stream,
// created from cfg.Seed, drives every draw; a fixed seed reproduces the
// whole dataset shape.
type Pipeline struct {
	log     *slog.Logger
	repo    WorkspaceBulkRepo
	cfg     Config
	now     time.Time
	sampler *chrono.Sampler
	text    *text.Composer
	results map[string]StageResult
}

// NewPipeline creates a new Pipeline. A zero seed is replaced with the
// current time so unconfigured runs still vary.
func NewPipeline(log *slog.Logger, repo WorkspaceBulkRepo, cfg Config) *Pipeline {
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewPCG(cfg.Seed, cfg.Seed)
	sampler := chrono.NewSampler(src)

	return &Pipeline{
		log:     log,
		repo:    repo,
		cfg:     cfg,
		now:     time.Now().UTC(),
		sampler: sampler,
		text:    text.NewComposer(gofakeit.NewFaker(src, false), sampler),
		results: make(map[string]StageResult),
	}
}

// Results returns stage results after Run completes.
func (p *Pipeline) Results() map[string]StageResult {
	return p.results
}

// TotalRows returns the summed row count across completed stages.
func (p *Pipeline) TotalRows() int {
	total := 0
	for _, r := range p.results {
		total += r.Rows
	}
	return total
}

// Run executes all stages in dependency order. The first failing stage
// aborts the run: downstream stages cannot proceed without upstream refs.
func (p *Pipeline) Run(ctx context.Context) error {
	p.log.Info("pipeline starting",
		slog.Uint64("seed", p.cfg.Seed),
		slog.Bool("dry_run", p.cfg.DryRun),
	)

	org, err := runStage(p, "organization", func() (domain.OrgRef, int, error) {
		return p.stageOrganization(ctx)
	})
	if err != nil {
		return err
	}

	teams, err := runStage(p, "teams", func() ([]domain.TeamRef, int, error) {
		return p.stageTeams(ctx, org)
	})
	if err != nil {
		return err
	}

	users, err := runStage(p, "users", func() ([]domain.UserRef, int, error) {
		return p.stageUsers(ctx, org)
	})
	if err != nil {
		return err
	}

	memberships, err := runStage(p, "memberships", func() ([]domain.MembershipRef, int, error) {
		return p.stageMemberships(ctx, teams, users)
	})
	if err != nil {
		return err
	}

	projects, err := runStage(p, "projects", func() ([]domain.ProjectRef, int, error) {
		return p.stageProjects(ctx, org, teams)
	})
	if err != nil {
		return err
	}

	sections, err := runStage(p, "sections", func() ([]domain.SectionRef, int, error) {
		return p.stageSections(ctx, projects)
	})
	if err != nil {
		return err
	}

	tasks, err := runStage(p, "tasks", func() ([]domain.TaskRef, int, error) {
		return p.stageTasks(ctx, org, projects, sections, users, memberships)
	})
	if err != nil {
		return err
	}

	if _, err := runStage(p, "subtasks", func() (struct{}, int, error) {
		n, err := p.stageSubtasks(ctx, org, tasks)
		return struct{}{}, n, err
	}); err != nil {
		return err
	}

	if _, err := runStage(p, "comments", func() (struct{}, int, error) {
		n, err := p.stageComments(ctx, tasks, users)
		return struct{}{}, n, err
	}); err != nil {
		return err
	}

	p.log.Info("pipeline completed",
		slog.Int("stages_run", len(allStages)),
		slog.Int("total_rows", p.TotalRows()),
	)
	return nil
}

// runStage times a stage, records its result, and logs the outcome.
func runStage[T any](p *Pipeline, name string, fn func() (T, int, error)) (T, error) {
	start := time.Now()
	out, rows, err := fn()
	result := StageResult{Rows: rows, Duration: time.Since(start), Err: err}
	p.results[name] = result

	if err != nil {
		p.log.Warn("stage failed",
			slog.String("stage", name),
			slog.String("error", err.Error()),
			slog.Duration("duration", result.Duration),
		)
		return out, fmt.Errorf("%s stage: %w", name, err)
	}

	p.log.Info("stage completed",
		slog.String("stage", name),
		slog.Int("rows", rows),
		slog.Duration("duration", result.Duration),
	)
	return out, nil
}

// write sends items to the repository in batches, or skips the write
// entirely on a dry run. The returned count is what a real run would have
// written, so dry runs still report volumes.
func write[T any](ctx context.Context, p *Pipeline, items []T, fn func(context.Context, []T) (int, error)) (int, error) {
	if p.cfg.DryRun {
		return len(items), nil
	}
	return batchProcess(items, p.cfg.BatchSize, func(batch []T) (int, error) {
		return fn(ctx, batch)
	})
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
