package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRuntimePath     = "github.com/embermark/flatbuffers/native"
	DefaultReferencePrefix = "T"
	DefaultValuePrefix     = "V"
	DefaultSuffix          = "_native.go"
	DefaultNativeDir       = "native"
)

type Config struct {
	Version int      `yaml:"version"`
	Schemas []Schema `yaml:"schemas"`
	Wire    Wire     `yaml:"wire"`
	Native  Native   `yaml:"native"`
	Runtime Runtime  `yaml:"runtime"`
	Naming  Naming   `yaml:"naming"`
	// GenAll also emits native code for every included schema file.
	GenAll  bool    `yaml:"genAll"`
	Logging Logging `yaml:"logging"`
}

type Schema struct {
	Path string `yaml:"path"`
}

// Wire locates the Go packages flatc generated for the schemas.
type Wire struct {
	Path string `yaml:"path"`
}

type Native struct {
	// Path is the import path of the root native package.
	Path string `yaml:"path"`
	// Dir is the directory, relative to the working dir, that Path maps to.
	Dir    string `yaml:"dir"`
	Suffix string `yaml:"suffix"`
}

type Runtime struct {
	Path string `yaml:"path"`
}

type Naming struct {
	ReferencePrefix string `yaml:"referencePrefix"`
	ValuePrefix     string `yaml:"valuePrefix"`
	EnumPrefix      string `yaml:"enumPrefix"`
}

type Logging struct {
	Level string `yaml:"level"`
}

func Read(configPath string) (*Config, error) {
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to read config file "%s": %w`, configPath, err)
	}

	config, err := Parse(fileData)
	if err != nil {
		return nil, fmt.Errorf(`invalid config file "%s": %w`, configPath, err)
	}

	return config, nil
}

// Parse unmarshals a config document, applies the defaults and validates
// the result.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.setDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) setDefaults() {
	if len(c.Runtime.Path) == 0 {
		c.Runtime.Path = DefaultRuntimePath
	}

	if len(c.Native.Dir) == 0 {
		c.Native.Dir = DefaultNativeDir
	}

	if len(c.Native.Suffix) == 0 {
		c.Native.Suffix = DefaultSuffix
	}

	if len(c.Naming.ReferencePrefix) == 0 {
		c.Naming.ReferencePrefix = DefaultReferencePrefix
	}

	if len(c.Naming.ValuePrefix) == 0 {
		c.Naming.ValuePrefix = DefaultValuePrefix
	}

	if len(c.Logging.Level) == 0 {
		c.Logging.Level = zerolog.LevelInfoValue
	}
}

func (c *Config) Validate() error {
	var errs []error

	if len(c.Schemas) == 0 {
		errs = append(errs, errors.New("no schemas configured"))
	}

	for i, s := range c.Schemas {
		if len(s.Path) == 0 {
			errs = append(errs, fmt.Errorf("schemas[%d]: missing path", i))
		}
	}

	if len(c.Wire.Path) == 0 {
		errs = append(errs, errors.New("wire: missing path"))
	}

	if len(c.Native.Path) == 0 {
		errs = append(errs, errors.New("native: missing path"))
	}

	if c.Naming.ReferencePrefix == c.Naming.ValuePrefix {
		errs = append(errs, fmt.Errorf(`naming: referencePrefix and valuePrefix are both "%s"`, c.Naming.ValuePrefix))
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (c *Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf(`logging: invalid level "%s"`, c.Logging.Level)
	}

	return level, nil
}
