package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMatsubara = 100
	DefaultStart     = 0.0
	DefaultEnd       = 1.0
	DefaultDt        = 0.1
	DefaultTol       = 0.01
	DefaultSig       = 1.1
	DefaultGam       = 1.2
	DefaultRate      = 1.0
)

var ErrInvalid = errors.New("config: invalid")

// Complex is a complex number written as {re, im} in YAML. A bare number is
// accepted as a real value.
type Complex struct {
	Re float64 `yaml:"re"`
	Im float64 `yaml:"im"`
}

func (c Complex) Value() complex128 { return complex(c.Re, c.Im) }

func (c *Complex) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var re float64
		if err := node.Decode(&re); err != nil {
			return err
		}
		*c = Complex{Re: re}
		return nil
	}
	type plain Complex
	return node.Decode((*plain)(c))
}

type InitConfig struct {
	Sig Complex `yaml:"sig"`
	Gam Complex `yaml:"gam"`
}

type Config struct {
	Model     string     `yaml:"model"`
	Stepper   string     `yaml:"stepper"`
	Matsubara int        `yaml:"matsubara"`
	Start     float64    `yaml:"start"`
	End       float64    `yaml:"end"`
	Dt        float64    `yaml:"dt"`
	AbsTol    float64    `yaml:"abs_tol"`
	RelTol    float64    `yaml:"rel_tol"`
	MaxDt     float64    `yaml:"max_dt"`
	Adaptive  bool       `yaml:"adaptive"`
	Rate      float64    `yaml:"rate"`
	Init      InitConfig `yaml:"init"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:     "constant",
		Stepper:   "cashkarp",
		Matsubara: DefaultMatsubara,
		Start:     DefaultStart,
		End:       DefaultEnd,
		Dt:        DefaultDt,
		AbsTol:    DefaultTol,
		RelTol:    DefaultTol,
		Adaptive:  true,
		Rate:      DefaultRate,
		Init: InitConfig{
			Sig: Complex{Re: DefaultSig},
			Gam: Complex{Re: DefaultGam},
		},
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file on top of a copy of base. Keys missing from the
// file keep the base values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every problem found, joined.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Model == "" {
		add("model is empty")
	}
	if c.Stepper == "" {
		add("stepper is empty")
	}
	if c.Matsubara <= 0 {
		add("matsubara must be positive, got %d", c.Matsubara)
	}
	if !(c.End > c.Start) {
		add("end %g must be after start %g", c.End, c.Start)
	}
	if !(c.Dt > 0) {
		add("dt must be positive, got %g", c.Dt)
	}
	if c.Adaptive && !(c.AbsTol > 0) {
		add("abs_tol must be positive for adaptive stepping, got %g", c.AbsTol)
	}
	if c.RelTol < 0 {
		add("rel_tol must not be negative, got %g", c.RelTol)
	}
	if c.MaxDt < 0 {
		add("max_dt must not be negative, got %g", c.MaxDt)
	}
	return errors.Join(errs...)
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
