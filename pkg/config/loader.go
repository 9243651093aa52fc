package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "FLAIRGEN_"
	// DefaultWorkers is used when generate.workers is not positive
	DefaultWorkers = 8
)

// Options controls where configuration is read from
type Options struct {
	// ConfigFile is an explicit config path. It must exist when set.
	ConfigFile string
	// Overrides are applied last, keyed by dotted path
	Overrides map[string]interface{}
}

// UserConfigPath returns the default user config file location
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, logging.AppName, "config.toml")
}

// DefaultCacheDir returns where the template checkout lives by default
func DefaultCacheDir() string {
	return filepath.Join(xdg.CacheHome, logging.AppName, "template")
}

// Load reads the layered configuration
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path := opts.ConfigFile
	explicit := path != ""
	if !explicit {
		path = UserConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path)
	}

	// 3. Environment, FLAIRGEN_POST_SKIP_INSTALL -> post.skip_install
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Explicit overrides (command line flags)
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				stringToArgvHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	postProcessConfig(&cfg)
	return &cfg, nil
}

// stringToArgvHookFunc splits a plain string into a command line on
// whitespace, so FLAIRGEN_POST_INSTALL_COMMAND="npm ci" works.
func stringToArgvHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf([]string{}) {
			return data, nil
		}
		return strings.Fields(data.(string)), nil
	}
}

func postProcessConfig(cfg *Config) {
	if cfg.Template.CacheDir == "" {
		cfg.Template.CacheDir = DefaultCacheDir()
	}
	if cfg.Generate.Workers <= 0 {
		cfg.Generate.Workers = DefaultWorkers
	}
}
