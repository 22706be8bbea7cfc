package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"

	"github.com/arthur-debert/wort/pkg/brew"
	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/logging"
)

const (
	// EnvConfig points at the config file, bypassing the XDG location.
	EnvConfig = "WORT_CONFIG"
	// EnvPrefix marks parameter overrides, e.g. WORT_EFFICIENCY=0.7.
	EnvPrefix = "WORT_"
	// DefaultSet is applied before any requested set.
	DefaultSet = "default"
)

// Options selects the sources Load layers.
type Options struct {
	// Fs holds the config file; nil means the OS filesystem.
	Fs afero.Fs
	// Path replaces Path(). Unlike the default location, an explicit
	// file must exist.
	Path string
	// Sets are parameter sets applied in order after DefaultSet.
	Sets []string
	// Overrides win over every other source.
	Overrides map[string]any
	// SkipEnv ignores WORT_* variables.
	SkipEnv bool
}

// Config is a resolved parameter mapping.
type Config struct {
	// File is the config file that was read, empty if none was found.
	File string
	// Sets are the parameter sets available for selection.
	Sets   []string
	Values map[string]any
}

// Params decodes the resolved values.
func (c *Config) Params() (brew.Params, error) {
	return brew.DecodeParams(c.Values)
}

// Path is where the user's config file is looked up: $WORT_CONFIG, else
// $XDG_CONFIG_HOME/wort/config.toml.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "wort", "config.toml")
	}
	return filepath.Join(xdg.ConfigHome, "wort", "config.toml")
}

// Load layers built-in defaults, the user's file, the requested
// parameter sets, the environment and opts.Overrides, later sources
// winning key by key.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")

	sets := koanf.New(".")
	if err := sets.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse built-in defaults")
	}

	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	path := opts.Path
	if path == "" {
		path = Path()
	}

	cfg := &Config{}
	found, err := afero.Exists(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", path).
			WithDetail("path", path)
	}
	switch {
	case found:
		if err := loadFile(sets, fs, path); err != nil {
			return nil, err
		}
		cfg.File = path
	case opts.Path != "":
		return nil, errors.Newf(errors.ErrConfigLoad, "config file %s does not exist", path).
			WithDetail("path", path)
	}
	logger.Debug().Str("path", path).Bool("found", found).Msg("Config file lookup")

	cfg.Sets = sets.MapKeys("")
	for _, name := range cfg.Sets {
		if _, ok := sets.Get(name).(map[string]interface{}); !ok {
			return nil, errors.Newf(errors.ErrConfigValid, "top-level key %q is not a parameter set", name).
				WithDetail("path", path).
				WithDetail("key", name)
		}
	}

	k := koanf.New(".")
	for _, name := range append([]string{DefaultSet}, opts.Sets...) {
		if !slices.Contains(cfg.Sets, name) {
			return nil, errors.Newf(errors.ErrNotFound, "parameter set %q is not defined", name).
				WithDetail("key", name).
				WithDetail("valid_keys", cfg.Sets)
		}
		if err := k.Load(confmap.Provider(lower(sets.Cut(name).All()), "."), nil); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot apply parameter set %q", name)
		}
		logger.Trace().Str("set", name).Msg("Applied parameter set")
	}

	if !opts.SkipEnv {
		if err := k.Load(envProvider(), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot read environment")
		}
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(lower(opts.Overrides), "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "cannot apply overrides")
		}
	}

	cfg.Values = k.All()
	return cfg, nil
}

func loadFile(k *koanf.Koanf, fs afero.Fs, path string) error {
	parser, err := parserFor(path)
	if err != nil {
		return err
	}

	var provider koanf.Provider
	if _, ok := fs.(*afero.OsFs); ok {
		provider = file.Provider(path)
	} else {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).WithDetail("path", path)
		}
		provider = &rawBytesProvider{bytes: data}
	}

	if err := k.Load(provider, parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s", path).WithDetail("path", path)
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml", "":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config format %q", ext).
			WithDetail("path", path).
			WithDetail("valid_keys", []string{".toml", ".yaml", ".yml"})
	}
}

// envProvider maps WORT_EFFICIENCY to efficiency, ignoring variables
// that are not parameters such as WORT_CONFIG.
func envProvider() *env.Env {
	valid := brew.Keys()
	return env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if !slices.Contains(valid, key) {
			return ""
		}
		return key
	})
}

func lower(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}

// ParseOverrides turns key=value arguments into an override mapping.
func ParseOverrides(args []string) (map[string]any, error) {
	out := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "override %q is not key=value", arg).
				WithDetail("valid_keys", brew.Keys())
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}
