package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type API struct {
	BaseURL string        `yaml:"base_url" env:"MEDICART_API_URL" env-default:"http://localhost:5000"`
	Timeout time.Duration `yaml:"timeout" env:"MEDICART_API_TIMEOUT" env-default:"15s"`
}

type Telemetry struct {
	OTLPEndpoint string `yaml:"otlp_endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
	ServiceName  string `yaml:"service_name" env:"OTEL_SERVICE_NAME" env-default:"medicart-client"`
}

type Config struct {
	Env             string    `yaml:"env" env:"ENV" env-default:"local"`
	API             API       `yaml:"api"`
	Telemetry       Telemetry `yaml:"telemetry"`
	CredentialsPath string    `yaml:"credentials_path" env:"MEDICART_CREDENTIALS" env-default:""`
}

// Load reads the config file at configPath, falling back to the CONFIG_PATH
// env var. Unlike a server there is no required deployment config: with no
// file at all, everything comes from env vars and defaults.
func Load(configPath string) (*Config, error) {

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	var cfg Config

	if configPath == "" {

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("can not read config from environment: %w", err)
		}

		return &cfg, nil

	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {

	cfg, err := Load("")
	if err != nil {
		log.Fatal(err.Error())
	}

	return cfg
}

// ResolveCredentialsPath returns the configured credential file location,
// defaulting to the per-user config directory.
func (c *Config) ResolveCredentialsPath() (string, error) {

	if c.CredentialsPath != "" {
		return c.CredentialsPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "medicart", "credentials.json"), nil
}
