package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Graph   GraphConfig   `mapstructure:"graph"`
	Query   QueryConfig   `mapstructure:"query"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Log     LogConfig     `mapstructure:"log"`
}

type GraphConfig struct {
	URI      string `mapstructure:"uri"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type QueryConfig struct {
	// Property is the node property used for endpoint lookup.
	Property string `mapstructure:"property"`
	// IndexHints emits USING INDEX clauses for the path endpoints.
	IndexHints bool `mapstructure:"index_hints"`
	// Uniqueness is the duplicate-node exclusion strategy:
	// none, nested, expanded, or labeled.
	Uniqueness string `mapstructure:"uniqueness"`
	// WeightExponent is the default DWPC damping exponent.
	WeightExponent float64 `mapstructure:"weight_exponent"`
}

type TracingConfig struct {
	Endpoint    string  `mapstructure:"endpoint"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Graph: GraphConfig{URI: "bolt://localhost:7687", Username: "neo4j"},
		Query: QueryConfig{
			Property:       "name",
			IndexHints:     true,
			Uniqueness:     "expanded",
			WeightExponent: 0.4,
		},
		Tracing: TracingConfig{SampleRate: 1.0},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	switch c.Query.Uniqueness {
	case "", "none", "nested", "expanded", "labeled":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown uniqueness mode %q (expected none, nested, expanded, or labeled)", c.Query.Uniqueness))
	}

	if c.Query.WeightExponent < 0 || c.Query.WeightExponent > 1 {
		warnings = append(warnings, fmt.Sprintf("weight_exponent %.2f is outside the usual range [0.0, 1.0]", c.Query.WeightExponent))
	}

	if c.Graph.URI == "" {
		warnings = append(warnings, "graph.uri is empty; dwpc execution will fail")
	}

	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		warnings = append(warnings, fmt.Sprintf("tracing sample_rate %.2f is outside [0.0, 1.0]", c.Tracing.SampleRate))
	}

	return warnings
}

// Load reads configuration from file and environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("HETIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("graph.uri", defaults.Graph.URI)
	v.SetDefault("graph.username", defaults.Graph.Username)
	v.SetDefault("query.property", defaults.Query.Property)
	v.SetDefault("query.index_hints", defaults.Query.IndexHints)
	v.SetDefault("query.uniqueness", defaults.Query.Uniqueness)
	v.SetDefault("query.weight_exponent", defaults.Query.WeightExponent)
	v.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}
