package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/screenruler/pkg/cache"
	"github.com/matzehuels/screenruler/pkg/errors"
)

// fileConfig is the optional TOML configuration. Command-line flags override
// every value set here.
//
//	[device]
//	dpr = 2
//	width = 1440
//	height = 900
//
//	[render]
//	formats = ["svg", "pdf"]
//	output = "ruler"
//	fragment = "ppi=220"
type fileConfig struct {
	Device deviceConfig `toml:"device"`
	Render renderConfig `toml:"render"`
}

type deviceConfig struct {
	DPR    float64 `toml:"dpr"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type renderConfig struct {
	Formats  []string `toml:"formats"`
	Output   string   `toml:"output"`
	Fragment string   `toml:"fragment"`
}

// configDir returns the config directory using XDG standard (~/.config/screenruler/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/screenruler/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// newCache opens the artifact cache, or a null cache when disabled or when
// no cache directory can be determined.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(filepath.Join(dir, "artifacts"))
}

// loadConfig reads the config at path. With an empty path it tries the
// default location and returns a zero config if nothing is there. The
// returned path is the file actually read, or "" if none was.
func loadConfig(path string) (fileConfig, string, error) {
	var cfg fileConfig

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, "", nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, "", nil
		}
		return cfg, "", errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, "", errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, path, nil
}
