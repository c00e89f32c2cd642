package meta

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"advclock/internal/clock"
)

// DefaultTimerName is the metric name used for a timed command when none is configured.
const DefaultTimerName = "command"

// DefaultClockSource names the clock source used when none is configured.
const DefaultClockSource = "system"

// ApplicationConfig is a top-level block for application-level meta configuration.
type ApplicationConfig struct {
	SentryDSN string `yaml:"sentry_dsn"`
}

// ClockConfig is a top-level block selecting the host monotonic clock source.
type ClockConfig struct {
	Source string `yaml:"source"`
}

// ReportConfig is a top-level block for measurement output configuration.
type ReportConfig struct {
	Precision string `yaml:"precision"`
	TimerName string `yaml:"timer_name"`
}

// MetricsConfig is a top-level block for metrics configuration.
type MetricsConfig struct {
	Statsd *struct {
		Address    string  `yaml:"addr"`
		SampleRate float64 `yaml:"sample_rate"`
	} `yaml:"statsd"`
	Prometheus *struct {
		Textfile string `yaml:"textfile"`
	} `yaml:"prometheus"`
}

// Config describes all application configuration options.
type Config struct {
	Application *ApplicationConfig `yaml:"application"`
	Clock       *ClockConfig       `yaml:"clock"`
	Report      *ReportConfig      `yaml:"report"`
	Metrics     *MetricsConfig     `yaml:"metrics"`
}

// DefaultConfig returns the configuration used when no configuration file is supplied: the system
// clock, output in milliseconds, no metrics, no error reporting.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// ParseConfig parses a Config struct instance from a file specified as a path on disk. An empty
// path yields the default configuration.
func ParseConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: error reading config: err=%v", err)
	}

	var cfg *Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: error parsing config: err=%v", err)
	}

	// An empty document unmarshals to a nil struct.
	if cfg == nil {
		cfg = &Config{}
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Precision returns the configured report precision. It must only be called on a validated
// config.
func (c *Config) Precision() clock.Precision {
	precision, _ := clock.ParsePrecision(c.Report.Precision)
	return precision
}

// Source returns the configured clock source. It must only be called on a validated config.
func (c *Config) Source() clock.Source {
	source, _ := clock.ParseSource(c.Clock.Source)
	return source
}

// applyDefaults fills in optional blocks and keys that were omitted.
func (c *Config) applyDefaults() {
	if c.Clock == nil {
		c.Clock = &ClockConfig{}
	}

	if c.Clock.Source == "" {
		c.Clock.Source = DefaultClockSource
	}

	if c.Report == nil {
		c.Report = &ReportConfig{}
	}

	if c.Report.Precision == "" {
		c.Report.Precision = clock.Milliseconds.String()
	}

	if c.Report.TimerName == "" {
		c.Report.TimerName = DefaultTimerName
	}
}

// validate the contents of the configuration. Returns an error if validation failed; nil otherwise.
func (c *Config) validate() error {
	/* Clock */

	if _, ok := clock.ParseSource(c.Clock.Source); !ok {
		return fmt.Errorf("config: unknown clock source: source=%s", c.Clock.Source)
	}

	/* Report */

	if _, ok := clock.ParsePrecision(c.Report.Precision); !ok {
		return fmt.Errorf("config: unknown report precision: precision=%s", c.Report.Precision)
	}

	/* Metrics */

	// Users can omit the metrics block entirely to disable metrics reporting.
	if c.Metrics == nil {
		return nil
	}

	if c.Metrics.Statsd != nil {
		if c.Metrics.Statsd.Address == "" {
			return fmt.Errorf("config: missing metrics statsd address")
		}

		if c.Metrics.Statsd.SampleRate < 0 || c.Metrics.Statsd.SampleRate > 1 {
			return fmt.Errorf("config: statsd sample rate must be in range [0.0, 1.0]")
		}
	}

	if c.Metrics.Prometheus != nil && c.Metrics.Prometheus.Textfile == "" {
		return fmt.Errorf("config: missing metrics prometheus textfile path")
	}

	return nil
}
