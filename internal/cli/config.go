package cli

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	apperrors "github.com/matzehuels/navgraph/pkg/errors"
	"github.com/matzehuels/navgraph/pkg/navgraph/grid"
)

// Config is the navgraph.toml file layout.
//
//	[log]
//	level = "debug"
//
//	[grid]
//	name = "aisle"
//	rows = 4
//	cols = 10
//	spacing = 1.5
//	diagonal = false
//	root = "r0c0"
//	unconnected = ["r3c9"]
//
//	[grid.properties]
//	zone = "A"
//
// Missing keys keep their defaults.
type Config struct {
	Log  LogConfig    `toml:"log"`
	Grid grid.Options `toml:"grid"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error; empty keeps the default
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() Config {
	return Config{Grid: grid.DefaultOptions()}
}

// configPath picks the config file: the --config flag, then $NAVGRAPH_CONFIG,
// then ./navgraph.toml if it exists. It returns "" when there is none.
func configPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := os.Getenv(configEnv); p != "" {
		return p
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}
	return ""
}

// loadConfig decodes the selected config file over the defaults.
// Unknown keys are rejected.
func loadConfig(flagPath string) (Config, error) {
	cfg := DefaultConfig()
	path := configPath(flagPath)
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "config file %s not found", path)
		}
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, apperrors.New(apperrors.ErrCodeInvalidConfig, "unknown keys in %s: %v", path, undecoded)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "invalid log level %q", c.Log.Level)
		}
	}
	return nil
}

// logLevel returns the configured level. Call only after validate.
func (c Config) logLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return LogInfo
	}
	return level
}
