package conf

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Search  SearchConfig
	Secrets SecretsConfig
	OpenAI  OpenAIConfig
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LogConfig struct {
	Level            string        `mapstructure:"level"`
	Format           string        `mapstructure:"format"`
	Output           string        `mapstructure:"output"`
	File             FileLogConfig `mapstructure:"file"`
	EnableStacktrace bool          `mapstructure:"enablestacktrace"`
}

type FileLogConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"maxsize"`
	MaxAge     int    `mapstructure:"maxage"`
	MaxBackups int    `mapstructure:"maxbackups"`
	Compress   bool   `mapstructure:"compress"`
}

type SearchConfig struct {
	Provider   string `mapstructure:"provider"`    // tavily
	APIHost    string `mapstructure:"api_host"`    // https://api.tavily.com
	Timeout    int    `mapstructure:"timeout"`     // seconds
	MaxRetries int    `mapstructure:"max_retries"` // default: 3
}

// SecretsConfig selects where the search API key comes from.
type SecretsConfig struct {
	Source    string        `mapstructure:"source"`     // static, aws
	APIKey    string        `mapstructure:"api_key"`    // static source
	SecretARN string        `mapstructure:"secret_arn"` // aws source
	Region    string        `mapstructure:"region"`     // aws source
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`  // 0 disables caching
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()

	viper.SetDefault("search.provider", "tavily")
	viper.SetDefault("search.api_host", "https://api.tavily.com")
	viper.SetDefault("search.max_retries", 3)
	viper.SetDefault("secrets.source", "static")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
