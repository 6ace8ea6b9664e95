package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// DefaultConfigFile is looked up in the working directory when no --config is given.
const DefaultConfigFile = "qadash.yml"

// Config is the YAML global configuration of qadash.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	HTTPClient HTTPClient `yaml:"http_client"`
	Backend    Backend    `yaml:"backend"`
	Dashboard  Dashboard  `yaml:"dashboard"`
	Output     Output     `yaml:"output"`
}

// Logger holds the logging directives.
type Logger struct {
	Level       string `yaml:"level"`
	DisableTime *bool  `yaml:"disable_time"`
	JSONFormat  *bool  `yaml:"json_format"`
}

// HTTPClient holds the directives of the client talking to the analysis backend.
type HTTPClient struct {
	Debug            *bool           `yaml:"debug"`
	RetryCount       int             `yaml:"retry_count"`
	RetryWaitTime    time.Duration   `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration   `yaml:"retry_max_wait_time"`
	Timeout          time.Duration   `yaml:"timeout"`
	TLSClientConfig  TLSClientConfig `yaml:"tls_client_config"`
	Proxy            Proxy           `yaml:"proxy"`
}

// TLSClientConfig holds TLS directives.
type TLSClientConfig struct {
	Verify *bool `yaml:"verify"`
}

// Proxy holds an optional HTTP proxy.
type Proxy struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Backend locates the analysis service.
type Backend struct {
	URL      string `yaml:"url"`
	BasePath string `yaml:"base_path"`
}

// Dashboard holds the browser dashboard directives.
type Dashboard struct {
	Listen string `yaml:"listen"`
	Title  string `yaml:"title"`
}

// Output holds presentation directives.
type Output struct {
	Color  *bool `yaml:"color"`
	Dedupe bool  `yaml:"dedupe"`
}

// ValidateConfigPath checks that path points to a regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// LoadConfig reads the configuration file. When the file is the implicit default and does
// not exist, built-in defaults are used instead.
func LoadConfig(configPath string, explicit bool) (*Config, error) {
	cfg := &Config{}

	if err := LoadYAML(configPath, cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config %q: %w", configPath, err)
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyEnv(cfg *Config) {
	if url := os.Getenv("QADASH_BACKEND_URL"); url != "" {
		cfg.Backend.URL = url
	}
}

func applyDefaults(cfg *Config) {
	cfg.Backend.URL = SetThen(cfg.Backend.URL, DefaultBackendURL)
	cfg.Backend.BasePath = SetThen(cfg.Backend.BasePath, DefaultBasePath)
	cfg.Dashboard.Listen = SetThen(cfg.Dashboard.Listen, DefaultListenAddr)
	cfg.Dashboard.Title = SetThen(cfg.Dashboard.Title, DefaultTitle)
	cfg.Logger.Level = SetThen(cfg.Logger.Level, "INFO")
}
