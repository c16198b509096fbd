package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
	BaseURL string `yaml:"base_url"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret      string `yaml:"secret"`
	Issuer      string `yaml:"issuer"`
	ShortTTL    string `yaml:"short_ttl"`
	ExtendedTTL string `yaml:"extended_ttl"`
}

type CookieConfig struct {
	Name   string `yaml:"name"`
	Domain string `yaml:"domain"`
	Secure bool   `yaml:"secure"`
}

type SessionConfig struct {
	CheckTimeout string `yaml:"check_timeout"`
}

type UploadConfig struct {
	Dir         string   `yaml:"dir"`
	MaxSizeMB   int      `yaml:"max_size_mb"`
	AllowedExts []string `yaml:"allowed_exts"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
	NotifyTo   string `yaml:"notify_to"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Cookie   CookieConfig   `yaml:"cookie"`
	Session  SessionConfig  `yaml:"session"`
	Upload   UploadConfig   `yaml:"upload"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

// Config is the resolved runtime configuration. It is built once at startup
// and injected into constructors; nothing reads the environment after Load.
type Config struct {
	Port                string
	GinMode             string
	BaseURL             string
	DSN                 string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	JWTSecret           string
	JWTIssuer           string
	ShortTTL            time.Duration
	ExtendedTTL         time.Duration
	CookieName          string
	CookieDomain        string
	CookieSecure        bool
	SessionCheckTimeout time.Duration
	UploadDir           string
	UploadMaxBytes      int64
	UploadAllowedExts   []string
	TwilioSID           string
	TwilioToken         string
	TwilioFrom          string
	TwilioNotifyTo      string
	CasbinModelPath     string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml, then applies environment overrides for
// secrets and connection strings.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	path := env("CONFIG_PATH", "config/config.yml")
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	shortTTL, err := time.ParseDuration(configFile.JWT.ShortTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT short TTL: %w", err)
	}

	extendedTTL, err := time.ParseDuration(configFile.JWT.ExtendedTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT extended TTL: %w", err)
	}

	checkTimeout, err := time.ParseDuration(configFile.Session.CheckTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid session check timeout: %w", err)
	}

	secret := env("JWT_SECRET", configFile.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	redisDB := configFile.Redis.DB
	if v := os.Getenv("REDIS_DB"); v != "" {
		redisDB, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
	}

	maxMB := configFile.Upload.MaxSizeMB
	if maxMB <= 0 {
		maxMB = 10
	}

	return &Config{
		Port:                fmt.Sprintf("%d", configFile.App.Port),
		GinMode:             configFile.App.GinMode,
		BaseURL:             configFile.App.BaseURL,
		DSN:                 env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:           env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:       env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:             redisDB,
		JWTSecret:           secret,
		JWTIssuer:           configFile.JWT.Issuer,
		ShortTTL:            shortTTL,
		ExtendedTTL:         extendedTTL,
		CookieName:          configFile.Cookie.Name,
		CookieDomain:        configFile.Cookie.Domain,
		CookieSecure:        configFile.Cookie.Secure,
		SessionCheckTimeout: checkTimeout,
		UploadDir:           env("UPLOAD_DIR", configFile.Upload.Dir),
		UploadMaxBytes:      int64(maxMB) << 20,
		UploadAllowedExts:   configFile.Upload.AllowedExts,
		TwilioSID:           env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:         env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:          env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
		TwilioNotifyTo:      env("TWILIO_NOTIFY_TO", configFile.Twilio.NotifyTo),
		CasbinModelPath:     configFile.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
