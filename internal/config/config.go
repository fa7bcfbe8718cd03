// Package config loads the .formbind.yaml project file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"formbind/internal/analyze"
	"formbind/internal/gen"
)

// DefaultFile is the config file looked up when --config is not given.
const DefaultFile = ".formbind.yaml"

// DefaultDebounce is the watch debounce window.
const DefaultDebounce = 200 * time.Millisecond

// Config is the content of a .formbind.yaml file.
type Config struct {
	// Packages are the package patterns to generate for.
	Packages []string `yaml:"packages" validate:"dive,required"`
	// Tag is the struct tag key carrying presenter ids.
	Tag string `yaml:"tag" validate:"required,printascii,excludesall= :\""`
	// FileSuffix is appended to the snake_case struct name.
	FileSuffix string `yaml:"file_suffix" validate:"required,endswith=.go"`
	// Header is the first line of generated files.
	Header string `yaml:"header" validate:"required,startswith=//"`
	// BuildFlags are passed to the build system when loading packages.
	BuildFlags []string `yaml:"build_flags,omitempty"`
	Watch      Watch    `yaml:"watch"`
}

// Watch configures the watch command.
type Watch struct {
	Debounce time.Duration `yaml:"debounce" validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no file exists.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// LoadOptional loads path when it exists and returns Default otherwise.
// An explicit path that does not exist is an error.
func LoadOptional(path string, explicit bool) (*Config, error) {
	c, err := LoadFile(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return c, err
}

// Parse parses YAML data into a Config, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid config: %w", err)
	}

	msgs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Errorf("%s: failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("invalid config: %w", errors.Join(msgs...))
}

// AnalyzeConfig returns the analyzer settings for dir.
func (c *Config) AnalyzeConfig(dir string) analyze.Config {
	ac := analyze.DefaultConfig()
	ac.Dir = dir
	ac.Tag = c.Tag
	ac.FileSuffix = c.FileSuffix
	ac.BuildFlags = c.BuildFlags

	return ac
}

// GeneratorConfig returns the generator settings.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	gc := gen.DefaultGeneratorConfig()
	gc.Header = c.Header
	gc.FileSuffix = c.FileSuffix

	return gc
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if len(c.Packages) == 0 {
		c.Packages = []string{"./..."}
	}

	if c.Tag == "" {
		c.Tag = analyze.DefaultTag
	}

	if c.FileSuffix == "" {
		c.FileSuffix = analyze.DefaultSuffix
	}

	if c.Header == "" {
		c.Header = gen.DefaultHeader
	}

	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = DefaultDebounce
	}
}
