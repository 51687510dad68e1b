package sortvis

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Input kinds accepted by Config.Input.
const (
	InputShuffled = "shuffled"
	InputReversed = "reversed"
	InputSorted   = "sorted"
)

// quadraticWarnSize is the size above which quadratic algorithms get a warning.
const quadraticWarnSize = 2000

// MetricsConfig controls the Prometheus exporter.
type MetricsConfig struct {
	// Enabled turns on the Prometheus collector and HTTP server.
	Enabled bool `yaml:"enabled"`

	// Addr is the listen address of the /metrics and /health endpoints.
	Addr string `yaml:"addr"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace"`
}

// NATSConfig controls the remote progress publisher.
//
// Publishing is disabled when URL is empty.
type NATSConfig struct {
	// URL of the NATS server, e.g. "nats://127.0.0.1:4222".
	URL string `yaml:"url"`

	// SubjectPrefix is the first subject token; events go to <prefix>.<sessionID>.progress
	// and <prefix>.<sessionID>.phase.
	SubjectPrefix string `yaml:"subjectPrefix"`

	// PublishInterval is the minimum time between two progress events.
	PublishInterval time.Duration `yaml:"publishInterval"`
}

// LogConfig controls the default slog-based logger built by the CLI.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is text or json.
	Format string `yaml:"format"`
}

// Config is the configuration for a Session.
//
// Duration fields accept standard Go duration strings like "500us", "2ms", "1s".
type Config struct {
	// Algorithm selects the sort worker. Required.
	Algorithm Algorithm `yaml:"algorithm"`

	// Size is the number of elements n. Must be at least 2.
	Size int `yaml:"size"`

	// Delay is the pacing delay slept after every unit of work.
	// Zero disables pacing; negative values are rejected.
	Delay time.Duration `yaml:"delay"`

	// FrameRate is the number of frames per second rendered by the terminal observer.
	FrameRate int `yaml:"frameRate"`

	// Seed makes shuffled input reproducible. Empty means a fresh random permutation.
	Seed string `yaml:"seed"`

	// Input selects the initial arrangement: shuffled, reversed or sorted.
	Input string `yaml:"input"`

	// Metrics controls the Prometheus exporter.
	Metrics MetricsConfig `yaml:"metrics"`

	// NATS controls the remote progress publisher.
	NATS NATSConfig `yaml:"nats"`

	// Log controls the default logger.
	Log LogConfig `yaml:"log"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Quick sort over 100 shuffled elements with a 500µs pacing delay
func DefaultConfig() Config {
	return Config{
		Algorithm: AlgorithmQuick,
		Size:      100,
		Delay:     500 * time.Microsecond,
		FrameRate: 60,
		Input:     InputShuffled,
		Metrics: MetricsConfig{
			Addr:      ":9090",
			Namespace: "sortvis",
		},
		NATS: NATSConfig{
			SubjectPrefix:   "sortvis",
			PublishInterval: 100 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults fills in missing optional values.
//
// Algorithm and Size are required and never defaulted; a zero Delay is a valid
// "no pacing" setting and is kept.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.FrameRate == 0 {
		cfg.FrameRate = defaults.FrameRate
	}
	if cfg.Input == "" {
		cfg.Input = defaults.Input
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = defaults.Metrics.Addr
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = defaults.Metrics.Namespace
	}
	if cfg.NATS.SubjectPrefix == "" {
		cfg.NATS.SubjectPrefix = defaults.NATS.SubjectPrefix
	}
	if cfg.NATS.PublishInterval == 0 {
		cfg.NATS.PublishInterval = defaults.NATS.PublishInterval
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Log.Format
	}
}

// Validate checks configuration constraints.
//
// Hard Validation Rules:
//   - Algorithm is one of bubble, selection, insertion, merge, quick
//   - Size >= 2
//   - Delay >= 0
//   - FrameRate >= 1
//   - Input is shuffled, reversed or sorted
//   - NATS.PublishInterval > 0 when NATS.URL is set
//
// Returns:
//   - error: Wraps ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if _, err := ParseAlgorithm(cfg.Algorithm.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if cfg.Size < 2 {
		return fmt.Errorf("%w: size must be an integer greater than 1, got %d", ErrInvalidConfig, cfg.Size)
	}

	if cfg.Delay < 0 {
		return fmt.Errorf("%w: delay must not be negative, got %v", ErrInvalidConfig, cfg.Delay)
	}

	if cfg.FrameRate < 1 {
		return fmt.Errorf("%w: frame rate must be an integer greater than 0, got %d", ErrInvalidConfig, cfg.FrameRate)
	}

	switch strings.ToLower(cfg.Input) {
	case InputShuffled, InputReversed, InputSorted:
	default:
		return fmt.Errorf("%w: unknown input %q (want %s, %s or %s)",
			ErrInvalidConfig, cfg.Input, InputShuffled, InputReversed, InputSorted)
	}

	if cfg.NATS.URL != "" && cfg.NATS.PublishInterval <= 0 {
		return fmt.Errorf("%w: nats publish interval must be > 0, got %v", ErrInvalidConfig, cfg.NATS.PublishInterval)
	}

	return nil
}

// ValidateWithWarnings logs warnings for legal but questionable values.
//
// This is called after Validate() in NewSession() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.Algorithm.Quadratic() && cfg.Size > quadraticWarnSize {
		logger.Warn(
			"quadratic algorithm on a large input, the run may take very long",
			"algorithm", cfg.Algorithm.String(),
			"size", cfg.Size,
			"recommended", fmt.Sprintf("size <= %d or merge/quick", quadraticWarnSize),
		)
	}

	if cfg.Delay == 0 {
		logger.Warn(
			"pacing delay is zero, observers will only see a few intermediate states",
			"delay", cfg.Delay,
			"recommended", "500us or higher",
		)
	}
}

// TestConfig returns a configuration optimized for fast test execution.
//
// Returns:
//   - Config: Small input without pacing
//
// Example:
//
//	cfg := sortvis.TestConfig()
//	cfg.Algorithm = sortvis.AlgorithmBubble
//	sess, err := sortvis.NewSession(&cfg)
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Size = 16
	cfg.Delay = 0
	cfg.NATS.PublishInterval = 10 * time.Millisecond

	return cfg
}

// LoadConfig reads a YAML configuration file and applies defaults.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: Parsed configuration with defaults applied (not yet validated)
//   - error: Read or parse failure
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration bytes and applies defaults.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	SetDefaults(&cfg)

	return &cfg, nil
}
