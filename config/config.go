package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

const DefaultPort = 8000

type Config struct {
	App struct {
		Name  string
		Port  int
		Debug bool
		Env   string
	}
	AI struct {
		APIKey      string        `mapstructure:"api_key"`
		BaseURL     string        `mapstructure:"base_url"`
		Model       string        `mapstructure:"model"`
		Temperature float64       `mapstructure:"temperature"`
		MaxTokens   int           `mapstructure:"max_tokens"`
		Timeout     time.Duration `mapstructure:"timeout"`
	}
}

// Load reads config/config.yml when present and overlays the environment.
// A missing config file is not an error; everything has a default.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	if len(paths) == 0 {
		paths = []string{"./config", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetDefault("app.name", "askpdf")
	v.SetDefault("app.port", DefaultPort)
	v.SetDefault("app.debug", true)
	v.SetDefault("app.env", "development")
	v.SetDefault("ai.base_url", "https://api.perplexity.ai/chat/completions")
	v.SetDefault("ai.model", "sonar")
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.max_tokens", 1024)
	v.SetDefault("ai.timeout", 30*time.Second)

	bindings := map[string]string{
		"ai.api_key":  "PERPLEXITY_API_KEY",
		"ai.base_url": "PERPLEXITY_API_URL",
		"ai.model":    "PERPLEXITY_MODEL",
		"app.debug":   "APP_DEBUG",
		"app.env":     "APP_ENV",
		"app.port":    "PORT",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if cfg.App.Port < 1 || cfg.App.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.App.Port)
	}
	if cfg.AI.Timeout <= 0 {
		return nil, fmt.Errorf("ai.timeout must be positive, got %s", cfg.AI.Timeout)
	}
	return cfg, nil
}

// ResolvePort picks the listening port: the first CLI argument wins, then
// the configured port (PORT or config file), then DefaultPort.
func ResolvePort(args []string, cfg *Config) (int, error) {
	if len(args) > 0 {
		port, err := strconv.Atoi(args[0])
		if err != nil || port < 1 || port > 65535 {
			return 0, fmt.Errorf("invalid port argument %q", args[0])
		}
		return port, nil
	}
	if cfg != nil && cfg.App.Port != 0 {
		return cfg.App.Port, nil
	}
	return DefaultPort, nil
}
