package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/FormGuard/pkg/common"
	"github.com/spf13/viper"
)

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Recaptcha RecaptchaConfig `mapstructure:"recaptcha"`
	Session   SessionConfig   `mapstructure:"session"`
	I18n      I18nConfig      `mapstructure:"i18n"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	AdminPort   int    `mapstructure:"admin_port"`
	PublicPort  int    `mapstructure:"public_port"`
	MetricsPort int    `mapstructure:"metrics_port"`
	Host        string `mapstructure:"host"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DBName       string `mapstructure:"name"`
	SSLMode      string `mapstructure:"sslmode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TLS      bool   `mapstructure:"tls"`
}

type RecaptchaConfig struct {
	SiteKey            string        `mapstructure:"site_key"`
	SecretKey          string        `mapstructure:"secret_key"`
	VerifyURL          string        `mapstructure:"verify_url"`
	Timeout            time.Duration `mapstructure:"timeout"`
	AllowedHostnames   []string      `mapstructure:"allowed_hostnames"`
	BreakerMaxFailures uint32        `mapstructure:"breaker_max_failures"`
	BreakerTimeout     time.Duration `mapstructure:"breaker_timeout"`
	ResponseTTL        time.Duration `mapstructure:"response_ttl"`
	// AllowUnverifiedSubmissions stores submissions without a verification
	// response instead of rejecting them.
	AllowUnverifiedSubmissions bool `mapstructure:"allow_unverified_submissions"`
}

type SessionConfig struct {
	CookieName string        `mapstructure:"cookie_name"`
	SigningKey string        `mapstructure:"signing_key"`
	TTL        time.Duration `mapstructure:"ttl"`
	Secure     bool          `mapstructure:"secure"`
}

// RateLimitConfig bounds requests per client IP on the public server. A zero
// limit disables it.
type RateLimitConfig struct {
	Limit  int           `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

type I18nConfig struct {
	Catalog string `mapstructure:"catalog"`
	Locale  string `mapstructure:"locale"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return fmt.Errorf("could not load main config file: %w", err)
	}
	SetDefaultValues(&globalConfig)
	return nil
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("config file %s.yaml not found, using only environment variables", fileName)
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

// SetDefaultValues fills every setting the service cannot run without.
func SetDefaultValues(cfg *Config) {
	if cfg.Server.AdminPort == 0 {
		cfg.Server.AdminPort = 8080
	}
	if cfg.Server.PublicPort == 0 {
		cfg.Server.PublicPort = 8081
	}
	if cfg.Server.MetricsPort == 0 {
		cfg.Server.MetricsPort = 9090
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Recaptcha.VerifyURL == "" {
		cfg.Recaptcha.VerifyURL = common.DefaultSiteVerifyURL
	}
	if cfg.Recaptcha.Timeout <= 0 {
		cfg.Recaptcha.Timeout = common.DefaultSiteVerifyTimeout
	}
	if cfg.Recaptcha.BreakerMaxFailures == 0 {
		cfg.Recaptcha.BreakerMaxFailures = 5
	}
	if cfg.Recaptcha.BreakerTimeout <= 0 {
		cfg.Recaptcha.BreakerTimeout = 30 * time.Second
	}
	if cfg.Recaptcha.ResponseTTL <= 0 {
		cfg.Recaptcha.ResponseTTL = common.DefaultVerificationTTL
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = common.DefaultSessionCookieName
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = common.DefaultSessionTTL
	}
	if cfg.RateLimit.Limit > 0 && cfg.RateLimit.Window <= 0 {
		cfg.RateLimit.Window = time.Minute
	}
	if cfg.I18n.Locale == "" {
		cfg.I18n.Locale = "en"
	}
}

func GetConfig() *Config {
	return &globalConfig
}
