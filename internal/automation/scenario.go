// Package automation runs scripted sequences of flows described in YAML.
package automation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/frgflow/internal/config"
	"github.com/san-kum/frgflow/internal/experiment"
	"github.com/san-kum/frgflow/internal/storage"
)

var ErrEmptyScenario = errors.New("automation: scenario has no steps")

// Scenario is a named list of runs. Every step starts from Preset (or the
// default configuration) and applies its own config overrides on top.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Preset      string         `yaml:"preset"`
	Steps       []ScenarioStep `yaml:"steps"`
}

type ScenarioStep struct {
	Label  string    `yaml:"label"`
	Preset string    `yaml:"preset"`
	Config yaml.Node `yaml:"config"`
}

// StepResult is one finished step. RunID is empty when nothing was stored.
type StepResult struct {
	Label   string
	Config  *config.Config
	RunID   string
	Outcome *experiment.Outcome
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if len(sc.Steps) == 0 {
		return nil, ErrEmptyScenario
	}
	return &sc, nil
}

// StepConfig resolves the configuration of step i.
func (sc *Scenario) StepConfig(i int) (*config.Config, error) {
	step := sc.Steps[i]
	name := step.Preset
	if name == "" {
		name = sc.Preset
	}

	cfg := config.DefaultConfig()
	if name != "" {
		if cfg = config.GetPreset(name); cfg == nil {
			return nil, fmt.Errorf("step %d: unknown preset %q", i+1, name)
		}
	}
	if !step.Config.IsZero() {
		if err := step.Config.Decode(cfg); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("step %d: %w", i+1, err)
	}
	return cfg, nil
}

// Run executes the steps in order and stores each run when store is not nil.
// It stops at the first failing step and returns the steps finished so far.
func Run(ctx context.Context, sc *Scenario, reg *experiment.Registry, store *storage.Store, logger *slog.Logger) ([]StepResult, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	results := make([]StepResult, 0, len(sc.Steps))

	for i, step := range sc.Steps {
		cfg, err := sc.StepConfig(i)
		if err != nil {
			return results, err
		}
		label := step.Label
		if label == "" {
			label = fmt.Sprintf("%s-%d", cfg.Model, i+1)
		}
		logger.Info("scenario step", "scenario", sc.Name, "step", i+1, "label", label)

		exp, err := experiment.New(cfg, reg, logger)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		out, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, label, err)
		}

		res := StepResult{Label: label, Config: cfg, Outcome: out}
		if store != nil {
			if res.RunID, err = store.Save(out.Metadata, out.Trajectory); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		results = append(results, res)
	}
	return results, nil
}
