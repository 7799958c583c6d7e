package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"respcss/breakpoints"
	"respcss/css"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	// Breakpoints replaces (rather than merges with) template values when
	// decoded from configuration file.
	Breakpoints breakpoints.Map

	OutputConfig struct {
		Layout string `yaml:"layout" validate:"required,oneof=nested hoisted"`
	}

	Config struct {
		Version     int            `yaml:"version" validate:"eq=1"`
		Breakpoints Breakpoints    `yaml:"breakpoints" validate:"dive,keys,required,endkeys,gte=0"`
		Output      OutputConfig   `yaml:"output"`
		Logging     LoggingConfig  `yaml:"logging"`
		Reporting   ReporterConfig `yaml:"reporting"`
	}
)

// UnmarshalYAML implements yaml.Unmarshaler.
func (b *Breakpoints) UnmarshalYAML(node *yaml.Node) error {
	m := make(map[string]int)
	if err := node.Decode(&m); err != nil {
		return err
	}
	*b = m
	return nil
}

// Map returns breakpoints in the form responsive generator expects.
func (b Breakpoints) Map() breakpoints.Map {
	return breakpoints.Map(b)
}

// StylesheetLayout returns requested stylesheet layout.
func (o OutputConfig) StylesheetLayout() (css.Layout, error) {
	return css.ParseLayout(o.Layout)
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
		if err := cfg.Breakpoints.Map().Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
