package config

import (
	_ "embed"
	"errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	perrors "github.com/arthur-debert/promptline/pkg/errors"
	"github.com/arthur-debert/promptline/pkg/paths"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// envPrefix is the prefix for environment variable overrides,
// e.g. PROMPTLINE_OS_STYLE=red overrides os.style.
const envPrefix = "PROMPTLINE_"

// envKeyRoots are the configuration roots an environment variable may
// target. Anything else under PROMPTLINE_ (such as PROMPTLINE_CONFIG_DIR)
// is operational, not configuration, and is skipped.
var envKeyRoots = []string{"format", "os.", "hostname."}

// Load reads the layered configuration from the default user file
// location with no programmatic overrides.
func Load() (*Config, error) {
	return LoadFrom(paths.ConfigFile(), nil)
}

// LoadFrom reads the layered configuration: embedded defaults, the
// given user file (optional), PROMPTLINE_* environment variables, and
// finally the supplied overrides. Any malformed layer fails the whole
// load; no partial configuration is ever returned.
func LoadFrom(userFile string, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file, if present
	if userFile != "" {
		if _, err := os.Stat(userFile); err == nil {
			if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
				return nil, perrors.Wrapf(err, perrors.ErrConfigParse,
					"failed to parse config file %s", userFile)
			}
		}
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(envPrefix, ".", envKeyTransform), nil); err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Programmatic overrides (CLI flags, tests)
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return unmarshal(k)
}

// envKeyTransform maps PROMPTLINE_OS_STYLE to os.style. Returning ""
// drops the variable.
func envKeyTransform(s string) string {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	for _, root := range envKeyRoots {
		if key == strings.TrimSuffix(root, ".") || strings.HasPrefix(key, root) {
			return key
		}
	}
	return ""
}

// unmarshal decodes the merged tree strictly: unknown keys are a
// schema violation, not silently dropped user intent.
func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			ErrorUnused:      true,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, conf); err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigValid, "configuration has invalid or unknown fields")
	}
	return &cfg, nil
}

// parseDefaults decodes only the embedded defaults layer.
func parseDefaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, perrors.Wrap(err, perrors.ErrConfigLoad, "failed to load defaults")
	}
	return unmarshal(k)
}
