package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gwaygenomics/hetio/internal/config"
	"github.com/gwaygenomics/hetio/internal/cypher"
	"github.com/gwaygenomics/hetio/internal/graph/neo4j"
	"github.com/gwaygenomics/hetio/internal/metagraph"
	"github.com/gwaygenomics/hetio/internal/observability"
)

func main() {
	var (
		configPath string
		schemaPath string
		metapath   string
		property   string
		uniqueness string
		indexHints bool
		source     string
		target     string
		weight     float64
		jsonOut    bool
	)

	rootCmd := &cobra.Command{
		Use:   "hetio",
		Short: "Hetnet metapath query compiler for Neo4j",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "", "Metagraph schema file (YAML)")

	compileCmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile a metapath into a DWPC Cypher query",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			query, _, err := compileQuery(cfg, schemaPath, metapath, property, uniqueness, indexHints, cmd)
			if err != nil {
				return err
			}
			fmt.Println(query.Text)
			return nil
		},
	}
	compileCmd.Flags().StringVar(&metapath, "metapath", "", "Metapath abbreviation (e.g. GiGaD)")
	compileCmd.Flags().StringVar(&property, "property", "", "Node property for endpoint lookup")
	compileCmd.Flags().StringVar(&uniqueness, "uniqueness", "", "Uniqueness mode: none, nested, expanded, labeled")
	compileCmd.Flags().BoolVar(&indexHints, "index-hints", true, "Emit USING INDEX clauses for the endpoints")
	_ = compileCmd.MarkFlagRequired("metapath")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a schema's abbreviations for ambiguity",
		RunE: func(cmd *cobra.Command, args []string) error {
			mg, err := metagraph.LoadSchema(schemaPath)
			if err != nil {
				return err
			}
			violations := metagraph.ValidateAbbreviations(mg)
			for _, violation := range violations {
				fmt.Fprintf(os.Stderr, "Violation: %s\n", violation)
			}
			if len(violations) > 0 {
				return fmt.Errorf("%d abbreviation violations", len(violations))
			}
			fmt.Printf("schema is unambiguous: %d node kinds, %d edge kinds\n", len(mg.Nodes()), len(mg.Edges()))
			return nil
		},
	}

	dwpcCmd := &cobra.Command{
		Use:   "dwpc",
		Short: "Compute the DWPC between two nodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runDWPC(cfg, schemaPath, metapath, property, uniqueness, indexHints, source, target, weight, jsonOut, cmd)
		},
	}
	dwpcCmd.Flags().StringVar(&metapath, "metapath", "", "Metapath abbreviation (e.g. GiGaD)")
	dwpcCmd.Flags().StringVar(&property, "property", "", "Node property for endpoint lookup")
	dwpcCmd.Flags().StringVar(&uniqueness, "uniqueness", "", "Uniqueness mode: none, nested, expanded, labeled")
	dwpcCmd.Flags().BoolVar(&indexHints, "index-hints", true, "Emit USING INDEX clauses for the endpoints")
	dwpcCmd.Flags().StringVar(&source, "source", "", "Source node identifier")
	dwpcCmd.Flags().StringVar(&target, "target", "", "Target node identifier")
	dwpcCmd.Flags().Float64Var(&weight, "weight", -1, "Damping exponent (default from config)")
	dwpcCmd.Flags().BoolVar(&jsonOut, "json", false, "Output result as JSON")
	_ = dwpcCmd.MarkFlagRequired("metapath")
	_ = dwpcCmd.MarkFlagRequired("source")
	_ = dwpcCmd.MarkFlagRequired("target")

	rootCmd.AddCommand(compileCmd, validateCmd, dwpcCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	for _, warning := range cfg.Validate() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}
	setupLogging(cfg.Log)
	return cfg, nil
}

func setupLogging(cfg config.LogConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// compileQuery loads the schema, parses the metapath, and compiles it
// with flag values overriding config values.
func compileQuery(cfg *config.Config, schemaPath, metapath, property, uniqueness string, indexHints bool, cmd *cobra.Command) (*cypher.CompiledQuery, *metagraph.Metapath, error) {
	if schemaPath == "" {
		return nil, nil, fmt.Errorf("--schema is required")
	}
	mg, err := metagraph.LoadSchema(schemaPath)
	if err != nil {
		return nil, nil, err
	}
	if err := mg.Check(); err != nil {
		return nil, nil, err
	}

	path, err := mg.ParseMetapath(metapath)
	if err != nil {
		return nil, nil, err
	}

	opts := cypher.DefaultOptions()
	if cfg.Query.Property != "" {
		opts.Property = cfg.Query.Property
	}
	if property != "" {
		opts.Property = property
	}
	modeName := cfg.Query.Uniqueness
	if uniqueness != "" {
		modeName = uniqueness
	}
	if modeName != "" {
		mode, err := cypher.ParseUniquenessMode(modeName)
		if err != nil {
			return nil, nil, err
		}
		opts.Uniqueness = mode
	}
	opts.IndexHints = cfg.Query.IndexHints
	if cmd.Flags().Changed("index-hints") {
		opts.IndexHints = indexHints
	}

	_, span := observability.StartCompileSpan(cmd.Context(), path.Abbrev(), path.Len())
	defer span.End()

	query, err := cypher.Compile(path, opts)
	if err != nil {
		observability.RecordError(span, err)
		return nil, nil, err
	}
	return query, path, nil
}

func runDWPC(cfg *config.Config, schemaPath, metapath, property, uniqueness string, indexHints bool, source, target string, weight float64, jsonOut bool, cmd *cobra.Command) error {
	ctx := context.Background()

	tp, err := observability.InitTracing(ctx, &observability.TracingConfig{
		ServiceName:  "hetio",
		Environment:  cfg.Tracing.Environment,
		OTLPEndpoint: cfg.Tracing.Endpoint,
		SampleRate:   cfg.Tracing.SampleRate,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			slog.Warn("tracing shutdown", "error", err)
		}
	}()

	query, path, err := compileQuery(cfg, schemaPath, metapath, property, uniqueness, indexHints, cmd)
	if err != nil {
		return err
	}

	if weight < 0 {
		weight = cfg.Query.WeightExponent
	}

	repo, err := neo4j.New(ctx, cfg.Graph.URI, cfg.Graph.Username, cfg.Graph.Password)
	if err != nil {
		return err
	}
	defer repo.Close(ctx)

	result, err := repo.DWPC(ctx, query, source, target, weight)
	if err != nil {
		return err
	}

	if jsonOut {
		out := map[string]any{
			"metapath":        path.Abbrev(),
			"source":          source,
			"target":          target,
			"weight_exponent": weight,
			"path_count":      result.PathCount,
			"dwpc":            result.DWPC,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("metapath:   %s\n", path.Abbrev())
	fmt.Printf("path_count: %d\n", result.PathCount)
	fmt.Printf("dwpc:       %g\n", result.DWPC)
	return nil
}
