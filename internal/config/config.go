// Package config loads compiler settings from a YAML file.
//
// A configuration file looks like:
//
//	target: x86_64-pc-linux-gnu
//	module: main
//	verify: true
//	log-level: warn
//	log-format: console
//
// Missing keys keep their defaults. Command-line flags override the file.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/kestrel/internal/irgen"
	"github.com/you-not-fish/kestrel/internal/logger"
	"github.com/you-not-fish/kestrel/internal/rtabi"
)

// DefaultFilename is the configuration file looked up when none is given.
const DefaultFilename = "kestrel.yaml"

// Config holds the compiler settings.
type Config struct {
	// Target is the LLVM target triple. Empty means the backend's host default.
	Target string `yaml:"target"`

	// Module names the output module.
	Module string `yaml:"module"`

	// Verify runs the IR verifier after lowering.
	Verify bool `yaml:"verify"`

	LogLevel  string `yaml:"log-level"`
	LogFormat string `yaml:"log-format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Target:    rtabi.DefaultTriple,
		Module:    rtabi.DefaultModule,
		Verify:    true,
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// Load reads the configuration file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	conf, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load %s", path)
	}
	return conf, nil
}

// LoadOptional reads the configuration file at path, returning the
// defaults if the file does not exist.
func LoadOptional(path string) (Config, error) {
	conf, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return conf, err
}

// Decode reads a configuration document from r on top of the defaults.
// Unknown keys are an error.
func Decode(r io.Reader) (Config, error) {
	conf := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "console", "json", "auto":
	default:
		return errors.Errorf("invalid log format %q", c.LogFormat)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() (zapcore.Level, error) {
	return logger.ParseLevel(c.LogLevel)
}

// Logger builds the logger described by c, writing to w.
func (c Config) Logger(w io.Writer) (*zap.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	lc := logger.Config{Format: c.LogFormat, Level: level}
	return lc.New(w)
}

// Compiler returns the lowering configuration for these settings.
func (c Config) Compiler(log *zap.Logger) *irgen.Config {
	return &irgen.Config{
		ModuleName: c.Module,
		Triple:     c.Target,
		Verify:     c.Verify,
		Logger:     log,
	}
}

// Encode writes c to w as YAML.
func (c Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, "encode config")
	}
	return enc.Close()
}
