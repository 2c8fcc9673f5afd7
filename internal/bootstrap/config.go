package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"

	errs "llm_advisor/internal/errors"
)

type Config struct {
	ServerPort        string        `mapstructure:"SERVER_PORT"`
	IsLocalCors       bool          `mapstructure:"LOCAL_CORS"`
	AzureApiKey       string        `mapstructure:"AZURE_API_KEY"`
	AzureEndpoint     string        `mapstructure:"AZURE_ENDPOINT"`
	AzureApiVersion   string        `mapstructure:"AZURE_API_VERSION"`
	LlmDeployment     string        `mapstructure:"LLM_DEPLOYMENT"`
	LlmRequestTimeout time.Duration `mapstructure:"LLM_REQUEST_TIMEOUT"`
}

var configKeys = []string{
	"SERVER_PORT",
	"LOCAL_CORS",
	"AZURE_API_KEY",
	"AZURE_ENDPOINT",
	"AZURE_API_VERSION",
	"LLM_DEPLOYMENT",
	"LLM_REQUEST_TIMEOUT",
}

// Setup читает .env (если он есть) и переменные окружения.
// Переменные окружения имеют приоритет над файлом.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgPath)
	v.SetConfigType("env")

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("AZURE_API_VERSION", "2024-05-01-preview")
	v.SetDefault("LLM_REQUEST_TIMEOUT", time.Duration(0))

	v.AutomaticEnv()
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.AzureApiKey == "":
		return fmt.Errorf("%w: AZURE_API_KEY", errs.ErrConfigMissing)
	case c.AzureEndpoint == "":
		return fmt.Errorf("%w: AZURE_ENDPOINT", errs.ErrConfigMissing)
	case c.LlmDeployment == "":
		return fmt.Errorf("%w: LLM_DEPLOYMENT", errs.ErrConfigMissing)
	}
	return nil
}
