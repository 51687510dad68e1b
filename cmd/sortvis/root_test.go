package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sortvis "github.com/Dyyynamic/sort-visualizer"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestApplyArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"valid", []string{"bubble", "10", "60"}, nil},
		{"unknown algorithm", []string{"bogo", "10", "60"}, errInvalidAlgorithm},
		{"n not a number", []string{"quick", "ten", "60"}, errInvalidSize},
		{"n too small", []string{"quick", "1", "60"}, errInvalidSize},
		{"frame rate not a number", []string{"merge", "10", "fast"}, errInvalidFrameRate},
		{"frame rate zero", []string{"merge", "10", "0"}, errInvalidFrameRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sortvis.DefaultConfig()
			err := applyArgs(&cfg, tt.args)
			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, sortvis.AlgorithmBubble, cfg.Algorithm)
			assert.Equal(t, 10, cfg.Size)
			assert.Equal(t, 60, cfg.FrameRate)
		})
	}
}

func TestArgumentErrorMessages(t *testing.T) {
	assert.Equal(t,
		"Invalid input for sortType. Please provide one of the following options: 'bubble', 'selection', 'insertion', 'merge', 'quick'.",
		errInvalidAlgorithm.Error())
	assert.Equal(t, "Invalid input for n. Please provide an integer greater than 1.", errInvalidSize.Error())
	assert.Equal(t, "Invalid input for frameRate. Please provide an integer greater than 0.", errInvalidFrameRate.Error())
}

func TestBuildConfig_Flags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--delay", "2ms",
		"--seed", "demo",
		"--input", "reversed",
		"--metrics-addr", "127.0.0.1:0",
		"--nats-url", "nats://127.0.0.1:4222",
		"--log-level", "debug",
	}))

	opts := &rootOptions{
		delay:       2 * time.Millisecond,
		seed:        "demo",
		input:       "reversed",
		metricsAddr: "127.0.0.1:0",
		natsURL:     "nats://127.0.0.1:4222",
		logLevel:    "debug",
	}
	cfg, err := opts.buildConfig(cmd, []string{"insertion", "32", "30"})
	require.NoError(t, err)

	assert.Equal(t, sortvis.AlgorithmInsertion, cfg.Algorithm)
	assert.Equal(t, 32, cfg.Size)
	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, 2*time.Millisecond, cfg.Delay)
	assert.Equal(t, "demo", cfg.Seed)
	assert.Equal(t, sortvis.InputReversed, cfg.Input)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "127.0.0.1:0", cfg.Metrics.Addr)
	assert.Equal(t, "nats://127.0.0.1:4222", cfg.NATS.URL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestBuildConfig_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortvis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
algorithm: selection
size: 40
delay: 0s
frameRate: 24
input: sorted
`), 0o600))

	t.Run("file only", func(t *testing.T) {
		cmd := newRootCmd()
		opts := &rootOptions{configPath: path}

		cfg, err := opts.buildConfig(cmd, nil)
		require.NoError(t, err)
		assert.Equal(t, sortvis.AlgorithmSelection, cfg.Algorithm)
		assert.Equal(t, 40, cfg.Size)
		assert.Equal(t, 24, cfg.FrameRate)
		assert.Zero(t, cfg.Delay)
		assert.Equal(t, sortvis.InputSorted, cfg.Input)
	})

	t.Run("arguments override file", func(t *testing.T) {
		cmd := newRootCmd()
		opts := &rootOptions{configPath: path}

		cfg, err := opts.buildConfig(cmd, []string{"quick", "8", "10"})
		require.NoError(t, err)
		assert.Equal(t, sortvis.AlgorithmQuick, cfg.Algorithm)
		assert.Equal(t, 8, cfg.Size)
		assert.Equal(t, 10, cfg.FrameRate)
		assert.Zero(t, cfg.Delay)
	})
}

func TestBuildConfig_MissingArgs(t *testing.T) {
	cmd := newRootCmd()
	opts := &rootOptions{}

	_, err := opts.buildConfig(cmd, []string{"quick"})
	require.ErrorIs(t, err, errMissingArgs)

	_, err = opts.buildConfig(cmd, nil)
	require.ErrorIs(t, err, errMissingArgs)
}

func TestExecute_InvalidArgs(t *testing.T) {
	_, err := execute(t, "bubble", "1", "60", "--headless")
	require.ErrorIs(t, err, errInvalidSize)

	_, err = execute(t, "bubble", "10", "60", "extra")
	require.Error(t, err)
}

func TestExecute_Headless(t *testing.T) {
	out, err := execute(t, "bubble", "5", "60",
		"--headless", "--delay", "0", "--input", "reversed", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Bubble Sort - 10 comparisons")
	assert.Contains(t, out, "[Verified]")
}

func TestExecute_HeadlessWithMetrics(t *testing.T) {
	out, err := execute(t, "quick", "64", "60",
		"--headless", "--delay", "0", "--seed", "metrics", "--metrics-addr", "127.0.0.1:0", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Quick Sort - ")
	assert.Contains(t, out, "[Verified]")
}

func TestFormatResult(t *testing.T) {
	line := formatResult(sortvis.Result{
		Algorithm:   sortvis.AlgorithmMerge,
		Phase:       sortvis.PhaseCancelled,
		Comparisons: 12,
		Accesses:    40,
		Elapsed:     250 * time.Millisecond,
		Cancelled:   true,
	})

	assert.Equal(t, "Merge Sort - 12 comparisons, 40 array accesses, 250ms elapsed [Cancelled]", line)
}
