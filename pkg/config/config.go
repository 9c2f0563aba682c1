package config

import (
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigtoml"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// DefaultFile is the config file looked up in the working directory
const DefaultFile = "quickshot.toml"

// Config describes all configuration options
type Config struct {
	Project     string        `default:"../" env:"PROJECT" toml:"project" usage:"Project directory passed to the configure command"`
	DebugOption string        `default:"-DCMAKE_BUILD_TYPE=DEBUG" env:"DEBUG_OPTION" toml:"debug_option" usage:"Option added to the configure command for debug builds"`
	SettleDelay time.Duration `default:"5s" env:"SETTLE_DELAY" toml:"settle_delay" usage:"Pause after the build so its output can settle on disk"`
	ImageMarker string        `default:".bmp" env:"IMAGE_MARKER" toml:"image_marker" usage:"Files whose name contains this string are removed before launch"`
	Commands    struct {
		Configure string `default:"build/cmake" env:"CONFIGURE" toml:"configure" usage:"Build-system configuration command"`
		Build     string `default:"build/make" env:"BUILD" toml:"build" usage:"Build command"`
		Demo      string `default:"build/QuickShotDemo" env:"DEMO" toml:"demo" usage:"Demo executable launched last"`
	} `env:"COMMANDS" toml:"commands"`
	Log struct {
		Level string `default:"info" env:"LEVEL" toml:"level"`
		JSON  bool   `default:"false" env:"JSON" toml:"json" usage:"Output JSONND instead of pretty console messages"`
	} `env:"LOG" toml:"log"`
}

var logLevels = map[string]zerolog.Level{
	"trace":   zerolog.TraceLevel,
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warn":    zerolog.WarnLevel,
	"warning": zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
	"fatal":   zerolog.FatalLevel,
}

// Loader initializes an empty config object and returns a new Loader for this object.
// Values are read from struct defaults, the given TOML files and QUICKSHOT_* environment variables.
func Loader(files ...string) (*Config, *aconfig.Loader) {
	if len(files) == 0 {
		files = []string{DefaultFile}
	}

	cfg := Config{}
	return &cfg, aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags:        true,
		AllowUnknownEnvs: true,
		EnvPrefix:        "QUICKSHOT",
		Files:            files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".toml": aconfigtoml.New(),
		},
	})
}

// Load is a shortcut for Loader followed by Load and Validate
func Load(files ...string) (*Config, error) {
	cfg, loader := Loader(files...)
	if err := loader.Load(); err != nil {
		return nil, eris.Wrap(err, "Failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate verifies that all config fields have valid values
func (cfg *Config) Validate() error {
	if _, ok := logLevels[cfg.Log.Level]; !ok {
		return eris.Errorf(`Invalid value for log.level: %s`, cfg.Log.Level)
	}

	if cfg.ImageMarker == "" {
		return eris.New(`image_marker must not be empty, it would match every file`)
	}

	if cfg.Commands.Demo == "" {
		return eris.New(`commands.demo must not be empty`)
	}

	if cfg.SettleDelay < 0 {
		return eris.Errorf(`Invalid value for settle_delay: %s`, cfg.SettleDelay)
	}

	return nil
}

// LogLevel converts the .Log.Level field to a zerolog.Level
func (cfg *Config) LogLevel() zerolog.Level {
	return logLevels[cfg.Log.Level]
}

// SetLogLevel overrides .Log.Level after validating the name
func (cfg *Config) SetLogLevel(level string) error {
	if _, ok := logLevels[level]; !ok {
		return eris.Errorf(`Invalid log level: %s`, level)
	}

	cfg.Log.Level = level
	return nil
}
