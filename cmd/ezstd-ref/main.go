// Command ezstd-ref builds an aggregator from a capability configuration
// file and writes the generated reference document for the enabled surface.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ezstd/ezstd"
	"github.com/ezstd/ezstd/feeders"
	"github.com/ezstd/ezstd/roles/fs"
	"github.com/ezstd/ezstd/roles/netx"
	"github.com/ezstd/ezstd/roles/proc"
	"github.com/ezstd/ezstd/roles/sched"
	"github.com/ezstd/ezstd/roles/strs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		enable     []string
		outPath    string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "ezstd-ref",
		Short: "Generate the reference document for an ezstd capability set",
		Long: `ezstd-ref composes the ezstd capability aggregator from a configuration
file and/or --enable flags, then writes the generated reference document
covering every enabled role namespace.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, enable, outPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "capability config file (.yaml or .toml)")
	cmd.Flags().StringSliceVarP(&enable, "enable", "e", nil, "capability flags to enable (repeatable)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func run(configPath string, enable []string, outPath string, verbose bool) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := &zerologLogger{
		logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger(),
	}

	opts := []ezstd.Option{
		ezstd.WithLogger(logger),
		ezstd.WithRoles(
			strs.NewRole(),
			fs.NewRole(),
			proc.NewRole(),
			netx.NewRole(),
			sched.NewRole(),
		),
		ezstd.WithCapabilities(enable...),
		ezstd.WithFeeders(feeders.NewPrefixedEnvFeeder("EZSTD_")),
	}
	if configPath != "" {
		feeder, err := feederFor(configPath)
		if err != nil {
			return err
		}
		opts = append(opts, ezstd.WithFeeders(feeder))
	}

	agg, err := ezstd.NewAggregator(opts...)
	if err != nil {
		return fmt.Errorf("compose aggregator: %w", err)
	}

	reference := agg.Reference()
	if outPath == "" {
		fmt.Print(reference)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(reference), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	logger.Info("reference written", "path", outPath, "bytes", len(reference))
	return nil
}

func feederFor(path string) (ezstd.Feeder, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return feeders.NewYamlFeeder(path), nil
	case ".toml":
		return feeders.NewTomlFeeder(path), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", path)
	}
}

// zerologLogger adapts zerolog to the ezstd.Logger key-value interface.
type zerologLogger struct {
	logger zerolog.Logger
}

func (l *zerologLogger) Info(msg string, args ...any)  { l.emit(l.logger.Info(), msg, args) }
func (l *zerologLogger) Error(msg string, args ...any) { l.emit(l.logger.Error(), msg, args) }
func (l *zerologLogger) Warn(msg string, args ...any)  { l.emit(l.logger.Warn(), msg, args) }
func (l *zerologLogger) Debug(msg string, args ...any) { l.emit(l.logger.Debug(), msg, args) }

func (l *zerologLogger) emit(event *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		event = event.Interface(key, args[i+1])
	}
	event.Msg(msg)
}
