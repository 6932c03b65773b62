package util

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Drolfothesgnir/bbforum/bbcode"
	"github.com/spf13/viper"
)

type Config struct {
	Environment         string        `mapstructure:"ENVIRONMENT"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	MigrationURL        string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress   string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress        string        `mapstructure:"REDIS_ADDRESS"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	AllowedOrigins      []string      `mapstructure:"ALLOWED_ORIGINS"`
	LeavingURL          string        `mapstructure:"LEAVING_URL"`
	ProfileURL          string        `mapstructure:"PROFILE_URL"`
	EmojiBaseURL        string        `mapstructure:"EMOJI_BASE_URL"`
	RenderCacheTTL      time.Duration `mapstructure:"RENDER_CACHE_TTL"`
	MaxInputLength      int           `mapstructure:"MAX_INPUT_LENGTH"`
}

// DefaultMaxInputLength is used when MAX_INPUT_LENGTH is not set.
const DefaultMaxInputLength = 64 * 1024

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("MAX_INPUT_LENGTH", DefaultMaxInputLength)
	viper.SetDefault("RENDER_CACHE_TTL", 10*time.Minute)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// Routes returns the link routes of the renderer. Empty values fall back
// to the renderer defaults.
func (config *Config) Routes() bbcode.Routes {
	return bbcode.Routes{
		Leaving:   config.LeavingURL,
		Profile:   config.ProfileURL,
		EmojiBase: config.EmojiBaseURL,
	}
}

// ExtractHostPort returns the host and port of the HTTP server address. The scheme is
// optional and port is empty if the address has none.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	addr := config.HTTPServerAddress
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	u, err := url.Parse(addr)
	if err != nil {
		return "", "", fmt.Errorf("error parsing http server url: %w", err)
	}

	host, port = u.Hostname(), u.Port()
	if host == "" {
		return "", "", fmt.Errorf("http server url %q has no host", config.HTTPServerAddress)
	}

	return host, port, nil
}
