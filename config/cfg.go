package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"regexp"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"github.com/ny-haritina10/pdf-generator/cascade"
	"github.com/ny-haritina10/pdf-generator/markup"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	CascadeConfig struct {
		SpecificityOrder   cascade.Order `yaml:"specificity_order" validate:"gte=0"`
		ExtendedProperties bool          `yaml:"extended_properties"`
		DefaultFontFamily  string        `yaml:"default_font_family" validate:"required"`
		DefaultFontSize    string        `yaml:"default_font_size" validate:"required"`
	}

	MarkupConfig struct {
		CheckTagBalance bool `yaml:"check_tag_balance"`
	}

	OutputConfig struct {
		Format OutputFormat `yaml:"format" validate:"gte=0"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Cascade   CascadeConfig  `yaml:"cascade"`
		Markup    MarkupConfig   `yaml:"markup"`
		Output    OutputConfig   `yaml:"output"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// Options converts configuration into cascade analyzer options.
func (conf *CascadeConfig) Options() []cascade.Option {
	opts := []cascade.Option{
		cascade.WithOrder(conf.SpecificityOrder),
		cascade.WithDefaultFont(conf.DefaultFontFamily, conf.DefaultFontSize),
	}
	if conf.ExtendedProperties {
		opts = append(opts, cascade.WithExtendedProperties())
	}
	return opts
}

// Options converts configuration into markup parser options.
func (conf *MarkupConfig) Options() []markup.Option {
	var opts []markup.Option
	if conf.CheckTagBalance {
		opts = append(opts, markup.WithTagBalanceCheck())
	}
	return opts
}

// font size is parsed leniently later, here we only want values which will
// not silently turn into something else
var reFontSize = regexp.MustCompile(`^\d+(\.\d+)?(px|pt)?$`)

func checkConfig(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	if size := cfg.Cascade.DefaultFontSize; size != "" && !reFontSize.MatchString(size) {
		sl.ReportError(size, "Cascade.DefaultFontSize", "DefaultFontSize", "fontsize", "")
	}
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
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkConfig)); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
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
