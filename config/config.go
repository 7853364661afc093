package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhamidi/jspan/java/extract"
	"gopkg.in/yaml.v3"
)

const DefaultPath = ".jspan.yaml"

// DefaultSeparator is printed before every extracted method.
const DefaultSeparator = "-----------split-line-----------------"

// Config holds all configuration for jspan.
type Config struct {
	Extract ExtractConfig `yaml:"extract"`
	Scan    ScanConfig    `yaml:"scan"`
	Logging LoggingConfig `yaml:"logging"`
}

type ExtractConfig struct {
	BraceMode    string `yaml:"brace_mode"` // "lexical" or "raw"
	Constructors bool   `yaml:"constructors"`
	Separator    string `yaml:"separator"`
}

// ScanConfig selects the files of a directory scan.
type ScanConfig struct {
	Includes  []string `yaml:"includes"`
	Excludes  []string `yaml:"excludes"`
	Gitignore bool     `yaml:"gitignore"`
	Workers   int      `yaml:"workers"` // 0 means one per CPU
	Progress  bool     `yaml:"progress"`
}

type LoggingConfig struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			BraceMode: extract.Lexical.String(),
			Separator: DefaultSeparator,
		},
		Scan: ScanConfig{
			Includes:  []string{"**/*.java"},
			Excludes:  []string{"**/build/**", "**/target/**", "**/.git/**", "**/node_modules/**"},
			Gitignore: true,
			Progress:  true,
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if _, err := extract.ParseBraceMode(c.Extract.BraceMode); err != nil {
		return err
	}
	if c.Extract.Separator == "" {
		return errors.New("extract.separator must not be empty")
	}
	if c.Scan.Workers < 0 {
		return fmt.Errorf("scan.workers must not be negative, got %d", c.Scan.Workers)
	}
	if c.Logging.Verbosity < 0 {
		return fmt.Errorf("logging.verbosity must not be negative, got %d", c.Logging.Verbosity)
	}
	return nil
}

// ExtractOptions converts the extract section into extractor options.
func (c *Config) ExtractOptions() (extract.Options, error) {
	mode, err := extract.ParseBraceMode(c.Extract.BraceMode)
	if err != nil {
		return extract.Options{}, err
	}
	return extract.Options{
		Mode:         mode,
		Constructors: c.Extract.Constructors,
	}, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
