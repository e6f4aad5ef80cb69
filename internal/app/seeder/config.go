package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/anterra/worksim/internal/domain"
)

// Config holds generation volumes and distribution knobs. All numeric
// volumes live here so experiments can tweak scale without touching the
// generator stages.
type Config struct {
	OrgName   string `yaml:"org_name"   env:"SEEDER_ORG_NAME"   env-default:"Acme Global Solutions"`
	OrgDomain string `yaml:"org_domain" env:"SEEDER_ORG_DOMAIN" env-default:"acme-corp.com"`

	// User base for a large enterprise deployment.
	MinUsers int `yaml:"min_users" env:"SEEDER_MIN_USERS" env-default:"3000"`
	MaxUsers int `yaml:"max_users" env:"SEEDER_MAX_USERS" env-default:"8000"`

	MinTeams int `yaml:"min_teams" env:"SEEDER_MIN_TEAMS" env-default:"8"`
	MaxTeams int `yaml:"max_teams" env:"SEEDER_MAX_TEAMS" env-default:"15"`

	MinProjectsPerTeam int `yaml:"min_projects_per_team" env:"SEEDER_MIN_PROJECTS_PER_TEAM" env-default:"3"`
	MaxProjectsPerTeam int `yaml:"max_projects_per_team" env:"SEEDER_MAX_PROJECTS_PER_TEAM" env-default:"10"`

	MinTasksPerProject int `yaml:"min_tasks_per_project" env:"SEEDER_MIN_TASKS_PER_PROJECT" env-default:"40"`
	MaxTasksPerProject int `yaml:"max_tasks_per_project" env:"SEEDER_MAX_TASKS_PER_PROJECT" env-default:"120"`

	// Fraction of tasks that receive subtasks, drawn uniformly per run.
	MinSubtaskFraction float64 `yaml:"min_subtask_fraction" env:"SEEDER_MIN_SUBTASK_FRACTION" env-default:"0.30"`
	MaxSubtaskFraction float64 `yaml:"max_subtask_fraction" env:"SEEDER_MAX_SUBTASK_FRACTION" env-default:"0.40"`

	// Fraction of tasks that receive a comment thread.
	CommentedTaskFraction float64 `yaml:"commented_task_fraction" env:"SEEDER_COMMENTED_TASK_FRACTION" env-default:"0.20"`

	// Target completion ratio for tasks.
	CompletionRatio float64 `yaml:"completion_ratio" env:"SEEDER_COMPLETION_RATIO" env-default:"0.65"`

	// Probability that a task is unassigned; real orgs keep some backlog unowned.
	UnassignedProbability float64 `yaml:"unassigned_probability" env:"SEEDER_UNASSIGNED_PROBABILITY" env-default:"0.20"`

	// Probability that an open task with a due date is forced overdue.
	OverdueProbability float64 `yaml:"overdue_probability" env:"SEEDER_OVERDUE_PROBABILITY" env-default:"0.10"`

	BatchSize int    `yaml:"batch_size" env:"SEEDER_BATCH_SIZE" env-default:"500"`
	Seed      uint64 `yaml:"seed"       env:"SEEDER_SEED"`
	DryRun    bool   `yaml:"dry_run"    env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads generation configuration from a YAML file and environment
// variables. Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks range sanity. Collects all violations into a single
// ValidationError so a bad config file is fixed in one pass.
func (c *Config) Validate() error {
	var fields []domain.FieldError

	checkRange := func(name string, lo, hi int) {
		if lo < 1 {
			fields = append(fields, domain.FieldError{Field: name, Message: "minimum must be at least 1"})
		}
		if hi < lo {
			fields = append(fields, domain.FieldError{Field: name, Message: "maximum must not be below minimum"})
		}
	}
	checkProb := func(name string, v float64) {
		if v < 0 || v > 1 {
			fields = append(fields, domain.FieldError{Field: name, Message: "must be within [0, 1]"})
		}
	}

	if c.OrgName == "" {
		fields = append(fields, domain.FieldError{Field: "org_name", Message: "must not be empty"})
	}
	if c.OrgDomain == "" {
		fields = append(fields, domain.FieldError{Field: "org_domain", Message: "must not be empty"})
	}

	checkRange("users", c.MinUsers, c.MaxUsers)
	checkRange("teams", c.MinTeams, c.MaxTeams)
	checkRange("projects_per_team", c.MinProjectsPerTeam, c.MaxProjectsPerTeam)
	checkRange("tasks_per_project", c.MinTasksPerProject, c.MaxTasksPerProject)

	checkProb("min_subtask_fraction", c.MinSubtaskFraction)
	checkProb("max_subtask_fraction", c.MaxSubtaskFraction)
	if c.MaxSubtaskFraction < c.MinSubtaskFraction {
		fields = append(fields, domain.FieldError{Field: "max_subtask_fraction", Message: "must not be below min_subtask_fraction"})
	}
	checkProb("commented_task_fraction", c.CommentedTaskFraction)
	checkProb("completion_ratio", c.CompletionRatio)
	checkProb("unassigned_probability", c.UnassignedProbability)
	if c.UnassignedProbability >= 1 {
		// Subtask creators are drawn from task assignees; with every task
		// unassigned that pool is empty.
		fields = append(fields, domain.FieldError{Field: "unassigned_probability", Message: "must be below 1"})
	}
	checkProb("overdue_probability", c.OverdueProbability)

	if c.BatchSize <= 0 {
		fields = append(fields, domain.FieldError{Field: "batch_size", Message: "must be positive"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}
