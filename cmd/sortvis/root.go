package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	sortvis "github.com/Dyyynamic/sort-visualizer"
)

// Argument errors are printed to users as-is, so they are full sentences.
//
//nolint:staticcheck // ST1005: user-facing messages
var (
	errInvalidAlgorithm = errors.New("Invalid input for sortType. Please provide one of the following options: " + algorithmOptions() + ".")
	errInvalidSize      = errors.New("Invalid input for n. Please provide an integer greater than 1.")
	errInvalidFrameRate = errors.New("Invalid input for frameRate. Please provide an integer greater than 0.")
	errMissingArgs      = errors.New("requires <algorithm> <n> <frameRate> unless --config is given")
)

func algorithmOptions() string {
	quoted := make([]string, 0, len(sortvis.Algorithms))
	for _, a := range sortvis.Algorithms {
		quoted = append(quoted, "'"+a.String()+"'")
	}

	return strings.Join(quoted, ", ")
}

type rootOptions struct {
	configPath  string
	delay       time.Duration
	seed        string
	input       string
	metricsAddr string
	natsURL     string
	logLevel    string
	logFormat   string
	headless    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sortvis <algorithm> <n> <frameRate>",
		Short: "Visualize sorting algorithms in the terminal",
		Long: `sortvis runs a sorting algorithm step by step on a worker goroutine and
draws every frame from a consistent snapshot of the shared state.

Accessed elements are drawn in red; after the sort completes a verification
sweep turns the confirmed prefix green.`,
		Example: `  sortvis quick 200 60
  sortvis bubble 50 30 --delay 2ms --seed demo
  sortvis merge 1000 60 --headless --metrics-addr :9090`,
		Args:         cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.buildConfig(cmd, args)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts.headless)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file; positional arguments override it")
	flags.DurationVar(&opts.delay, "delay", sortvis.DefaultConfig().Delay, "pacing delay after every unit of work")
	flags.StringVar(&opts.seed, "seed", "", "seed for a reproducible shuffle")
	flags.StringVar(&opts.input, "input", sortvis.InputShuffled, "initial arrangement: shuffled, reversed or sorted")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	flags.StringVar(&opts.natsURL, "nats-url", "", "publish progress events to this NATS server")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text or json")
	flags.BoolVar(&opts.headless, "headless", false, "run without the terminal UI and print a summary")

	return cmd
}

// buildConfig merges the config file, positional arguments and changed flags.
func (o *rootOptions) buildConfig(cmd *cobra.Command, args []string) (*sortvis.Config, error) {
	var cfg *sortvis.Config
	if o.configPath != "" {
		loaded, err := sortvis.LoadConfig(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		if len(args) != 3 {
			return nil, errMissingArgs
		}
		defaults := sortvis.DefaultConfig()
		cfg = &defaults
	}

	if len(args) > 0 {
		if len(args) != 3 {
			return nil, errMissingArgs
		}
		if err := applyArgs(cfg, args); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("delay") || o.configPath == "" {
		cfg.Delay = o.delay
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("input") {
		cfg.Input = o.input
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Enabled = o.metricsAddr != ""
		cfg.Metrics.Addr = o.metricsAddr
	}
	if flags.Changed("nats-url") {
		cfg.NATS.URL = o.natsURL
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}

	sortvis.SetDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyArgs parses <algorithm> <n> <frameRate> into cfg.
func applyArgs(cfg *sortvis.Config, args []string) error {
	algorithm, err := sortvis.ParseAlgorithm(args[0])
	if err != nil {
		return errInvalidAlgorithm
	}

	n, err := strconv.Atoi(args[1])
	if err != nil || n < 2 {
		return errInvalidSize
	}

	frameRate, err := strconv.Atoi(args[2])
	if err != nil || frameRate < 1 {
		return errInvalidFrameRate
	}

	cfg.Algorithm = algorithm
	cfg.Size = n
	cfg.FrameRate = frameRate

	return nil
}

func formatResult(res sortvis.Result) string {
	line := fmt.Sprintf("%s Sort - %d comparisons, %d array accesses, %dms elapsed",
		res.Algorithm.Title(), res.Comparisons, res.Accesses, res.Elapsed.Milliseconds())

	return line + " [" + res.Phase.String() + "]"
}
