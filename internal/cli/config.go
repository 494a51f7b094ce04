package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/strandlab/braidviz/pkg/errors"
)

// Config holds user defaults loaded from the TOML config file. Every
// field is optional; zero values mean "use the built-in default".
// Command-line flags override config values.
type Config struct {
	Style         string   `toml:"style"`
	Formats       []string `toml:"formats"`
	Compact       bool     `toml:"compact"`
	StrandSpacing float64  `toml:"strand_spacing"`
	RowSpacing    float64  `toml:"row_spacing"`
	Color         string   `toml:"color"`
	LineWidth     float64  `toml:"line_width"`
	Gap           float64  `toml:"gap"`
	Scale         float64  `toml:"scale"`
	CacheDir      string   `toml:"cache_dir"`
}

// defaultConfigPath returns the per-user config file location,
// e.g. ~/.config/braidviz/config.toml on Linux.
func defaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "braidviz", "config.toml"), nil
}

// loadConfig reads the config file at path. An empty path means the
// default location. A missing file is not an error and yields a zero
// Config.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return Config{}, nil
		}
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err,
			"load config %s", path)
	}
	return cfg, nil
}

// cacheDir resolves the artifact cache directory, preferring the config
// value over the per-user cache location.
func cacheDir(cfg Config) (string, error) {
	if cfg.CacheDir != "" {
		return cfg.CacheDir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "braidviz"), nil
}
