package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Database DatabaseConfig
	Auth     AuthConfig
	CORS     CORSConfig

	// Multi-provider AI layer
	AI AIConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type DatabaseConfig struct {
	Path string // sqlite file path
}

type AuthConfig struct {
	SecretKey          string
	TokenExpireMinutes int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// AIConfig holds the multi-provider AI configuration.
// Loaded once at startup; read-only afterwards.
type AIConfig struct {
	DefaultProvider string
	Providers       []ProviderConfig
}

// ProviderConfig holds configuration for a single AI provider.
// A provider with an empty APIKey is resolvable but unavailable.
type ProviderConfig struct {
	ID      string
	APIKey  string
	Model   string
	BaseURL string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Database.Path = viper.GetString("database.path")

	cfg.Auth.SecretKey = viper.GetString("auth.secret_key")
	cfg.Auth.TokenExpireMinutes = viper.GetInt("auth.token_expire_minutes")
	if secret := viper.GetString("secret_key"); secret != "" {
		cfg.Auth.SecretKey = secret
	}

	// Split allowed origins since viper might not parse array seamlessly from env
	var origins []string
	if rawOrigins := viper.GetString("cors.allowed_origins"); rawOrigins != "" {
		for _, o := range strings.Split(rawOrigins, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}
	cfg.CORS.AllowedOrigins = origins

	// AI providers: fixed closed set, one block each.
	// API keys come from env (GEMINI_API_KEY etc.) or config file.
	cfg.AI.DefaultProvider = viper.GetString("ai.default_provider")
	cfg.AI.Providers = []ProviderConfig{
		{
			ID:      "gemini",
			APIKey:  firstNonEmpty(viper.GetString("gemini_api_key"), viper.GetString("ai.gemini.api_key")),
			Model:   viper.GetString("ai.gemini.model"),
			BaseURL: viper.GetString("ai.gemini.base_url"),
		},
		{
			ID:      "openai",
			APIKey:  firstNonEmpty(viper.GetString("openai_api_key"), viper.GetString("ai.openai.api_key")),
			Model:   viper.GetString("ai.openai.model"),
			BaseURL: viper.GetString("ai.openai.base_url"),
		},
		{
			ID:      "siliconflow",
			APIKey:  firstNonEmpty(viper.GetString("siliconflow_api_key"), viper.GetString("ai.siliconflow.api_key")),
			Model:   viper.GetString("ai.siliconflow.model"),
			BaseURL: viper.GetString("ai.siliconflow.base_url"),
		},
		{
			ID:      "deepseek",
			APIKey:  firstNonEmpty(viper.GetString("deepseek_api_key"), viper.GetString("ai.deepseek.api_key")),
			Model:   viper.GetString("ai.deepseek.model"),
			BaseURL: viper.GetString("ai.deepseek.base_url"),
		},
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.path", "./easynote.db")

	viper.SetDefault("auth.secret_key", "your-super-secret-key-change-this")
	viper.SetDefault("auth.token_expire_minutes", 1440) // 24h

	viper.SetDefault("cors.allowed_origins", "http://localhost:3000")

	// AI defaults
	viper.SetDefault("ai.default_provider", "siliconflow")
	viper.SetDefault("ai.gemini.model", "gemini-2.0-flash")
	viper.SetDefault("ai.gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("ai.openai.model", "gpt-4o-mini")
	viper.SetDefault("ai.openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("ai.siliconflow.model", "Qwen/Qwen2.5-7B-Instruct")
	viper.SetDefault("ai.siliconflow.base_url", "https://api.siliconflow.cn/v1")
	viper.SetDefault("ai.deepseek.model", "deepseek-chat")
	viper.SetDefault("ai.deepseek.base_url", "https://api.deepseek.com/v1")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
