package sortvis

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type warnRecorder struct {
	warnings []string
}

func (w *warnRecorder) Debug(string, ...any) {}
func (w *warnRecorder) Info(string, ...any)  {}
func (w *warnRecorder) Warn(msg string, _ ...any) {
	w.warnings = append(w.warnings, msg)
}
func (w *warnRecorder) Error(string, ...any) {}
func (w *warnRecorder) Fatal(string, ...any) {}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, AlgorithmQuick, cfg.Algorithm)
	require.Equal(t, 100, cfg.Size)
	require.Equal(t, 500*time.Microsecond, cfg.Delay)
	require.Equal(t, 60, cfg.FrameRate)
	require.Equal(t, InputShuffled, cfg.Input)
	require.Equal(t, ":9090", cfg.Metrics.Addr)
	require.Equal(t, "sortvis", cfg.Metrics.Namespace)
	require.Equal(t, "sortvis", cfg.NATS.SubjectPrefix)
	require.Equal(t, 100*time.Millisecond, cfg.NATS.PublishInterval)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("fills optional values only", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, AlgorithmUnknown, cfg.Algorithm, "algorithm is required")
		require.Zero(t, cfg.Size, "size is required")
		require.Zero(t, cfg.Delay, "zero delay means no pacing")
		require.Equal(t, 60, cfg.FrameRate)
		require.Equal(t, InputShuffled, cfg.Input)
		require.Equal(t, "info", cfg.Log.Level)
		require.Equal(t, "text", cfg.Log.Format)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Algorithm: AlgorithmMerge,
			Size:      7,
			Delay:     time.Millisecond,
			FrameRate: 30,
			Input:     InputReversed,
			NATS:      NATSConfig{SubjectPrefix: "viz", PublishInterval: time.Second},
			Log:       LogConfig{Level: "debug", Format: "json"},
		}
		SetDefaults(&cfg)

		require.Equal(t, AlgorithmMerge, cfg.Algorithm)
		require.Equal(t, 7, cfg.Size)
		require.Equal(t, time.Millisecond, cfg.Delay)
		require.Equal(t, 30, cfg.FrameRate)
		require.Equal(t, InputReversed, cfg.Input)
		require.Equal(t, "viz", cfg.NATS.SubjectPrefix)
		require.Equal(t, time.Second, cfg.NATS.PublishInterval)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, "json", cfg.Log.Format)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown algorithm", func(c *Config) { c.Algorithm = AlgorithmUnknown }},
		{"size one", func(c *Config) { c.Size = 1 }},
		{"size zero", func(c *Config) { c.Size = 0 }},
		{"negative delay", func(c *Config) { c.Delay = -time.Millisecond }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"unknown input", func(c *Config) { c.Input = "random-ish" }},
		{"nats without interval", func(c *Config) {
			c.NATS.URL = "nats://127.0.0.1:4222"
			c.NATS.PublishInterval = 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("size two is the minimum", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Size = 2
		require.NoError(t, cfg.Validate())
	})

	t.Run("unknown algorithm also wraps ErrUnknownAlgorithm", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Algorithm = AlgorithmUnknown
		require.ErrorIs(t, cfg.Validate(), ErrUnknownAlgorithm)
	})
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	t.Run("quiet for defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		rec := &warnRecorder{}
		cfg.ValidateWithWarnings(rec)
		require.Empty(t, rec.warnings)
	})

	t.Run("large quadratic run and zero delay", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Algorithm = AlgorithmBubble
		cfg.Size = 5000
		cfg.Delay = 0

		rec := &warnRecorder{}
		cfg.ValidateWithWarnings(rec)
		require.Len(t, rec.warnings, 2)
	})

	t.Run("large n log n run is fine", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Algorithm = AlgorithmMerge
		cfg.Size = 5000

		rec := &warnRecorder{}
		cfg.ValidateWithWarnings(rec)
		require.Empty(t, rec.warnings)
	})
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	require.Zero(t, cfg.Delay)
	require.Equal(t, 16, cfg.Size)
	require.NoError(t, cfg.Validate())
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
algorithm: insertion
size: 250
delay: 2ms
frameRate: 30
seed: demo
input: reversed
metrics:
  enabled: true
  addr: 127.0.0.1:9191
nats:
  url: nats://127.0.0.1:4222
  publishInterval: 50ms
log:
  level: debug
`)

	cfg, err := ParseConfig(data)
	require.NoError(t, err)
	require.Equal(t, AlgorithmInsertion, cfg.Algorithm)
	require.Equal(t, 250, cfg.Size)
	require.Equal(t, 2*time.Millisecond, cfg.Delay)
	require.Equal(t, 30, cfg.FrameRate)
	require.Equal(t, "demo", cfg.Seed)
	require.Equal(t, InputReversed, cfg.Input)
	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, "127.0.0.1:9191", cfg.Metrics.Addr)
	require.Equal(t, "sortvis", cfg.Metrics.Namespace, "defaults fill missing nested values")
	require.Equal(t, "nats://127.0.0.1:4222", cfg.NATS.URL)
	require.Equal(t, 50*time.Millisecond, cfg.NATS.PublishInterval)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestParseConfig_UnknownAlgorithm(t *testing.T) {
	_, err := ParseConfig([]byte("algorithm: bogo\nsize: 5\n"))
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestLoadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = AlgorithmSelection
	cfg.Size = 12

	data, err := yaml.Marshal(&cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sortvis.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, cfg, *loaded)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
