package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/cork/pkg/errors"
	"github.com/arthur-debert/cork/pkg/logging"
	"github.com/arthur-debert/cork/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of configuration environment variables
const EnvPrefix = "CORK_"

// LoadOptions controls Load
type LoadOptions struct {
	// ConfigFile is an explicit user file. It must exist when set.
	ConfigFile string
	// SkipUserFile ignores the default user file
	SkipUserFile bool
	// SkipEnv ignores CORK_* environment variables
	SkipEnv bool
	// Overrides are applied last, keyed by dotted path ("output.verbose")
	Overrides map[string]interface{}
}

// Load merges every configuration source into Settings and validates them
func Load(opts LoadOptions) (*Settings, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User file
	path, explicit := opts.ConfigFile, opts.ConfigFile != ""
	if !explicit && !opts.SkipUserFile {
		path = paths.ConfigFile()
	}
	if path != "" {
		if err := loadFile(k, path, explicit); err != nil {
			return nil, err
		}
	}

	// 3. Environment
	if !opts.SkipEnv {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	settings, err := decode(k)
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("file", path).
		Bool("verbose", settings.Output.Verbose).
		Str("ansi", settings.Output.ANSI).
		Msg("Configuration loaded")
	return settings, nil
}

// Defaults returns the embedded default settings
func Defaults() *Settings {
	settings, err := Load(LoadOptions{SkipUserFile: true, SkipEnv: true})
	if err != nil {
		// The embedded file is part of the binary
		panic(err)
	}
	return settings
}

func loadFile(k *koanf.Koanf, path string, explicit bool) error {
	path = filepath.Clean(path)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
			WithDetail("path", path)
	}

	parser, err := parserFor(path)
	if err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path).
			WithDetail("path", path)
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", "":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// envKey maps CORK_LAYOUT_MAX_WIDTH to layout.max_width: the first segment
// is the section, the rest is the key.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
}

func decode(k *koanf.Koanf) (*Settings, error) {
	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	return &settings, nil
}
