package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"codeberg.org/varkas/amptop/internal/errors"
)

const (
	DefaultInterval  = 60
	DefaultDelay     = 1
	DefaultLogLevel  = "warning"
	DefaultProvider  = "sysfs"
	defaultDirPerm   = 0o755
	maxReadFailures  = 5
	stateDirFragment = ".local/share/amptop"
)

// Names of the files kept in the state directory.
const (
	DBFileName     = "battery.db"
	PIDFileName    = "daemon.pid"
	StdoutFileName = "daemon.out"
	StderrFileName = "daemon.err"
)

// Config holds all process-wide settings, resolved once at startup and passed
// explicitly into the supervisor, collector and log constructors.
type Config struct {
	Interval        int    `mapstructure:"interval"`
	Delay           int    `mapstructure:"delay"`
	LogLevel        string `mapstructure:"log_level"`
	Provider        string `mapstructure:"provider"`
	StateDir        string `mapstructure:"state_dir"`
	MaxReadFailures int    `mapstructure:"max_read_failures"`
}

// Load reads configuration from the config file (AMPTOP_CONFIG or
// ~/.config/amptop.toml), environment, and defaults. The state directory is
// resolved and created here, exactly once.
func Load() (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("delay", DefaultDelay)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("provider", DefaultProvider)
	v.SetDefault("state_dir", "")
	v.SetDefault("max_read_failures", maxReadFailures)

	v.SetEnvPrefix("AMPTOP")
	v.AutomaticEnv()

	if path := os.Getenv("AMPTOP_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("amptop")
		v.SetConfigType("toml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config"))
		}
		v.AddConfigPath("/etc")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if _, missing := err.(*os.PathError); !missing {
				return nil, errFactory.Wrap(errors.ErrReadConfig, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	if cfg.StateDir == "" {
		cfg.StateDir = resolveStateDir()
	}
	if err := os.MkdirAll(cfg.StateDir, defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(errors.ErrIOFailed, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}
	if c.Delay <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Delay)
	}
	switch c.LogLevel {
	case "debug", "info", "warning", "warn", "error":
	default:
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}
	switch c.Provider {
	case "sysfs", "upower":
	default:
		return errFactory.WithData(errors.ErrInvalidConfig, c.Provider)
	}

	return nil
}

// DBPath returns the location of the persistent snapshot log.
func (c *Config) DBPath() string {
	return filepath.Join(c.StateDir, DBFileName)
}

// PIDPath returns the location of the PID record.
func (c *Config) PIDPath() string {
	return filepath.Join(c.StateDir, PIDFileName)
}

// StdoutPath returns the capture file for the detached process's stdout.
func (c *Config) StdoutPath() string {
	return filepath.Join(c.StateDir, StdoutFileName)
}

// StderrPath returns the capture file for the detached process's stderr.
func (c *Config) StderrPath() string {
	return filepath.Join(c.StateDir, StderrFileName)
}

// resolveStateDir picks the per-user state directory, falling back to a
// temporary directory when no home directory is available.
func resolveStateDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, stateDirFragment)
	}

	return filepath.Join(os.TempDir(), "amptop")
}
