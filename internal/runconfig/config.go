package runconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"energilab/collatz-count/internal/platform/logging"

	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the resolved run configuration. The target length is not part of
// it; it is fixed at collatz.TargetLength.
type Config struct {
	Output           string
	LogLevel         string
	MetricsFile      string
	ProgressInterval time.Duration
}

type FileConfig struct {
	Run RunFileConfig `yaml:"run"`
}

type RunFileConfig struct {
	Output           string         `yaml:"output"`
	LogLevel         string         `yaml:"logLevel"`
	MetricsFile      *string        `yaml:"metricsFile"`
	ProgressInterval *time.Duration `yaml:"progressInterval"`
}

func DefaultConfig() Config {
	return Config{
		Output:           OutputText,
		LogLevel:         "warn",
		ProgressInterval: 5 * time.Second,
	}
}

// LoadFromPath resolves defaults, then the YAML file, then COLLATZ_* env vars.
// With an empty path the default candidates are tried and silently skipped
// when absent; an explicit path must exist and parse.
func LoadFromPath(configPath string) (Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		parsed, err := readFile(configPath)
		if err != nil {
			return Config{}, err
		}
		Merge(&cfg, parsed.Run)
		ApplyEnvOverrides(&cfg)
		return cfg, nil
	}

	for _, path := range []string{
		"configs/collatz.yaml",
		"collatz-count/configs/collatz.yaml",
	} {
		parsed, err := readFile(path)
		if err != nil {
			continue
		}
		Merge(&cfg, parsed.Run)
		break
	}
	ApplyEnvOverrides(&cfg)
	return cfg, nil
}

func readFile(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var parsed FileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return FileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return parsed, nil
}

func Merge(dst *Config, src RunFileConfig) {
	if src.Output != "" {
		dst.Output = src.Output
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.MetricsFile != nil {
		dst.MetricsFile = *src.MetricsFile
	}
	if src.ProgressInterval != nil {
		dst.ProgressInterval = *src.ProgressInterval
	}
}

func ApplyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("COLLATZ_OUTPUT")); v != "" {
		cfg.Output = v
	}
	if v := strings.TrimSpace(os.Getenv("COLLATZ_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("COLLATZ_METRICS_FILE")); v != "" {
		cfg.MetricsFile = v
	}

	raw := strings.TrimSpace(os.Getenv("COLLATZ_PROGRESS_INTERVAL"))
	if raw == "" {
		return
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return
	}
	cfg.ProgressInterval = d
}

func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Output)) {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("%w: output must be %s or %s, got %q", ErrInvalidConfig, OutputText, OutputJSON, c.Output)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.ProgressInterval < 0 {
		return fmt.Errorf("%w: progressInterval must be >= 0, got %s", ErrInvalidConfig, c.ProgressInterval)
	}
	return nil
}
