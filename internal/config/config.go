// Package config holds the shell's runtime configuration: AWS profile and
// region, output format, and assistant settings. Values come from a YAML
// file with environment variables taking precedence, matching how the rest
// of the AWS tooling on a workstation behaves.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Defaults applied when neither file nor environment provide a value.
const (
	DefaultRegion   = "us-east-2"
	DefaultProfile  = "default"
	DefaultLLMModel = "claude-sonnet-4-20250514"
)

// LLM holds the conversational assistant settings.
type LLM struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

// Config is the shell's mutable runtime configuration.
type Config struct {
	Profile      string `yaml:"profile"`
	Region       string `yaml:"region"`
	OutputFormat string `yaml:"output_format"`
	LLM          LLM    `yaml:"llm"`

	path string
}

// DefaultPath returns ~/.awshell/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".awshell", "config.yaml")
	}
	return filepath.Join(home, ".awshell", "config.yaml")
}

// Load reads configuration from the given path (DefaultPath when empty).
// A missing file is not an error; the shell starts with defaults. A present
// but unreadable file is reported so a typo doesn't silently vanish.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	// Workstation .env files are a convenience for the assistant API key.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("profile", DefaultProfile)
	v.SetDefault("region", DefaultRegion)
	v.SetDefault("output_format", "table")
	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.model", DefaultLLMModel)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, statErr := os.Stat(path); statErr == nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		Profile:      firstNonEmpty(os.Getenv("AWS_PROFILE"), v.GetString("profile")),
		Region:       firstNonEmpty(os.Getenv("AWS_DEFAULT_REGION"), v.GetString("region")),
		OutputFormat: v.GetString("output_format"),
		LLM: LLM{
			Provider: v.GetString("llm.provider"),
			APIKey:   firstNonEmpty(os.Getenv("ANTHROPIC_API_KEY"), v.GetString("llm.api_key")),
			Model:    firstNonEmpty(os.Getenv("AWSHELL_LLM_MODEL"), v.GetString("llm.model")),
		},
		path: path,
	}
	return cfg, nil
}

// Set updates a config value by dotted key ("region", "llm.api_key") and
// persists the change. Unknown keys are an error so typos surface.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "profile":
		c.Profile = value
	case "region":
		c.Region = value
	case "output_format":
		if !c.SetOutput(value) {
			return fmt.Errorf("invalid output format %q (table|json|text)", value)
		}
		return c.Save()
	case "llm.provider":
		c.LLM.Provider = value
	case "llm.api_key":
		c.LLM.APIKey = value
	case "llm.model":
		c.LLM.Model = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return c.Save()
}

// OutputFormats returns the accepted output format names.
func OutputFormats() []string {
	return []string{"table", "json", "text"}
}

// SetOutput validates and applies the output format.
func (c *Config) SetOutput(format string) bool {
	switch format {
	case "table", "json", "text":
		c.OutputFormat = format
		return true
	}
	return false
}

// Save writes the configuration back to its YAML file, creating the
// directory 0700 and the file 0600 since it can hold an API key.
func (c *Config) Save() error {
	dir := filepath.Dir(c.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}

	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(c.path, raw, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Path returns the config file location.
func (c *Config) Path() string { return c.path }

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
