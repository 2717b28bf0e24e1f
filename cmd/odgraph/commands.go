package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/odgraph/analysis"
	"github.com/katalvlaran/odgraph/config"
	"github.com/katalvlaran/odgraph/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// analyzeFlags holds the flags of the analyze command.
type analyzeFlags struct {
	flows       string
	vertices    string
	configPath  string
	out         string
	metricsFile string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "odgraph",
		Short:         "Origin-destination flow graph analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAnalyzeCmd(), newConfigCmd())

	return root
}

func newAnalyzeCmd() *cobra.Command {
	var f analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Build, score, prune and partition a flow table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd.Context(), cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVar(&f.flows, "flows", "", "flow CSV (source, destination, numeric weight columns)")
	cmd.Flags().StringVar(&f.vertices, "vertices", "", "optional vertex CSV (id column plus attributes)")
	cmd.Flags().StringVar(&f.configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&f.out, "out", "", "write the JSON report here instead of stdout")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics in textfile format")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "override logging.level")
	_ = cmd.MarkFlagRequired("flows")

	return cmd
}

func newConfigCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "YAML configuration file")

	return cmd
}

func runAnalyze(ctx context.Context, stdout io.Writer, f analyzeFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	log, err := cfg.Logger()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	in, err := readInput(f, cfg.Input)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	rep, runErr := analysis.Run(ctx, in, cfg, analysis.WithLogger(log), analysis.WithRecorder(metrics.New(reg)))
	if f.metricsFile != "" {
		if err := prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
			log.Error("writing metrics failed", zap.String("path", f.metricsFile), zap.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}

	return writeReport(stdout, f.out, rep)
}

func readInput(f analyzeFlags, cols config.InputConfig) (analysis.Input, error) {
	var in analysis.Input
	fh, err := os.Open(f.flows)
	if err != nil {
		return in, err
	}
	defer fh.Close()
	if in.Flows, err = readFlows(fh, cols.SourceColumn, cols.DestinationColumn); err != nil {
		return in, fmt.Errorf("%s: %w", f.flows, err)
	}

	if f.vertices == "" {
		return in, nil
	}
	vh, err := os.Open(f.vertices)
	if err != nil {
		return in, err
	}
	defer vh.Close()
	if in.Vertices, err = readVertices(vh, cols.IDColumn); err != nil {
		return in, fmt.Errorf("%s: %w", f.vertices, err)
	}

	return in, nil
}

func writeReport(stdout io.Writer, path string, rep *analysis.Report) error {
	w := stdout
	if path != "" {
		fh, err := os.Create(path)
		if err != nil {
			return err
		}
		defer fh.Close()
		w = fh
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}
