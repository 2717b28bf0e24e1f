// Package config loads and validates the YAML configuration of an odgraph
// analysis run and converts it into per-package options.
//
// Priority: environment > file > defaults. Validation uses struct tags
// (github.com/go-playground/validator/v10); every constraint mirrors the
// checks the corresponding option constructor performs.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the full analysis configuration.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Graph      GraphConfig      `yaml:"graph"`
	Centrality CentralityConfig `yaml:"centrality"`
	Prune      PruneConfig      `yaml:"prune"`
	Community  CommunityConfig  `yaml:"community"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// InputConfig names the CSV columns read by the command wrapper.
type InputConfig struct {
	SourceColumn      string `yaml:"source_column" validate:"required"`
	DestinationColumn string `yaml:"destination_column" validate:"required,nefield=SourceColumn"`
	IDColumn          string `yaml:"id_column" validate:"required"`
}

// GraphConfig controls graph construction.
type GraphConfig struct {
	Aggregation      string `yaml:"aggregation" validate:"oneof=keep-all sum-duplicates"`
	StrictAttachment bool   `yaml:"strict_attachment"`
	AllowLoops       bool   `yaml:"allow_loops"`
}

// CentralityConfig controls the centrality measures.
type CentralityConfig struct {
	Measures        []string `yaml:"measures" validate:"dive,oneof=degree closeness eigenvector"`
	WeightAttribute string   `yaml:"weight_attribute"`
	InverseWeights  bool     `yaml:"inverse_weights"`
	Workers         int      `yaml:"workers" validate:"min=1"`
	Directed        bool     `yaml:"directed"`
	Tolerance       float64  `yaml:"tolerance" validate:"gt=0"`
	MaxIterations   int      `yaml:"max_iterations" validate:"min=1"`
	ScaleToMax      bool     `yaml:"scale_to_max"`
}

// PruneConfig controls the threshold pruner.
type PruneConfig struct {
	WeightAttribute string `yaml:"weight_attribute" validate:"required"`
	MinDegree       int    `yaml:"min_degree" validate:"min=1"`
	StartThreshold  int    `yaml:"start_threshold" validate:"min=0"`
	MaxThreshold    int    `yaml:"max_threshold" validate:"min=0"`
}

// CommunityConfig controls community detection on the pruned graph.
type CommunityConfig struct {
	WeightAttribute string  `yaml:"weight_attribute"`
	Teleportation   float64 `yaml:"teleportation" validate:"gte=0,lt=1"`
	MaxLevels       int     `yaml:"max_levels" validate:"min=1"`
	Trials          int     `yaml:"trials" validate:"min=1"`
	Seed            *int64  `yaml:"seed"`
}

// LoggingConfig selects the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Input: InputConfig{
			SourceColumn:      "source",
			DestinationColumn: "destination",
			IDColumn:          "id",
		},
		Graph: GraphConfig{
			Aggregation: "keep-all",
		},
		Centrality: CentralityConfig{
			Measures:      []string{"degree", "closeness", "eigenvector"},
			Workers:       4,
			Tolerance:     1e-6,
			MaxIterations: 1000,
		},
		Prune: PruneConfig{
			WeightAttribute: "all",
			MinDegree:       5,
			StartThreshold:  1,
		},
		Community: CommunityConfig{
			Teleportation: 0.15,
			MaxLevels:     64,
			Trials:        1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults, applies ODGRAPH_* environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be ≥ %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", field, fe.Param())
	case "lt":
		return fmt.Sprintf("%s must be < %s", field, fe.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ODGRAPH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("ODGRAPH_MIN_DEGREE"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Prune.MinDegree = i
		}
	}
	if v := os.Getenv("ODGRAPH_WORKERS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Centrality.Workers = i
		}
	}
	if v := os.Getenv("ODGRAPH_SEED"); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Community.Seed = &i
		}
	}
}
