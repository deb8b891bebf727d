package commands

import (
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/agiangrant/alshim/internal/ffi"
)

// DefaultConfigFile is read from the working directory when no --config is given.
const DefaultConfigFile = "alshim.toml"

// Config represents the alshim.toml configuration file
type Config struct {
	Library LibraryConfig `toml:"library"`
	Log     LogConfig     `toml:"log"`
	Tone    ToneConfig    `toml:"tone"`
}

type LibraryConfig struct {
	// Library tried before the candidates
	Path string `toml:"path"`
	// Replaces the platform defaults when non-empty
	Candidates []string `toml:"candidates"`
}

type LogConfig struct {
	// debug, info, warn or error
	Level string `toml:"level"`
	// logfmt or json
	Format string `toml:"format"`
}

type ToneConfig struct {
	Frequency  float64  `toml:"frequency"`
	Duration   Duration `toml:"duration"`
	SampleRate int      `toml:"sample_rate"`
}

// Duration is a time.Duration written as a string such as "1.5s".
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// DefaultConfig returns a sensible default configuration
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "logfmt",
		},
		Tone: ToneConfig{
			Frequency:  440,
			Duration:   Duration{time.Second},
			SampleRate: 44100,
		},
	}
}

// LoadConfig loads the configuration from path. A missing default file
// yields the defaults; a missing explicit file is an error. The library path
// environment variable overrides library.path.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "failed to parse %s", path)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return config, errors.Wrapf(err, "failed to read %s", path)
	}

	if env := os.Getenv(ffi.LibraryPathEnv); env != "" {
		config.Library.Path = env
	}
	return config, config.Validate()
}

// MaxSampleRate is the highest tone.sample_rate accepted. OpenAL takes the
// rate as a 32-bit ALCint.
const MaxSampleRate = 768000

// Validate rejects values the commands cannot use.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "logfmt", "json":
	default:
		return errors.Errorf("invalid log.format %q", c.Log.Format)
	}
	if c.Tone.Frequency <= 0 {
		return errors.Errorf("tone.frequency must be positive, got %v", c.Tone.Frequency)
	}
	if c.Tone.SampleRate <= 0 {
		return errors.Errorf("tone.sample_rate must be positive, got %d", c.Tone.SampleRate)
	}
	if c.Tone.SampleRate > MaxSampleRate {
		return errors.Errorf("tone.sample_rate must be at most %d, got %d", MaxSampleRate, c.Tone.SampleRate)
	}
	if c.Tone.Duration.Duration <= 0 {
		return errors.Errorf("tone.duration must be positive, got %s", c.Tone.Duration)
	}
	return nil
}

// SaveConfig writes the configuration to path
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// LoaderOptions turns the library section into loader options.
func (c Config) LoaderOptions() []ffi.Option {
	var opts []ffi.Option
	if c.Library.Path != "" {
		opts = append(opts, ffi.WithLibraryPath(c.Library.Path))
	}
	if len(c.Library.Candidates) > 0 {
		opts = append(opts, ffi.WithCandidates(c.Library.Candidates...))
	}
	return opts
}
