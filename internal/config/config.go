package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config/config.yml"

type AppConfig struct {
	Port        int      `yaml:"port" env:"PORT"`
	GinMode     string   `yaml:"gin_mode" env:"GIN_MODE"`
	Env         string   `yaml:"env" env:"ENV"`
	LogLevel    string   `yaml:"log_level" env:"LOG_LEVEL"`
	CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS" envSeparator:","`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"DSN"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"ADDR"`
	Password string `yaml:"password" env:"PASSWORD"`
	DB       int    `yaml:"db" env:"DB"`
}

type AuthConfig struct {
	AccessSecret      string `yaml:"access_secret" env:"ACCESS_SECRET"`
	RefreshSecret     string `yaml:"refresh_secret" env:"REFRESH_SECRET"`
	Issuer            string `yaml:"issuer" env:"ISSUER"`
	AccessTTL         string `yaml:"access_ttl" env:"ACCESS_TTL"`
	RefreshTTL        string `yaml:"refresh_ttl" env:"REFRESH_TTL"`
	BcryptCost        int    `yaml:"bcrypt_cost" env:"BCRYPT_COST"`
	RevocationEnabled bool   `yaml:"revocation_enabled" env:"REVOCATION_ENABLED"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid" env:"ACCOUNT_SID"`
	AuthToken  string `yaml:"auth_token" env:"AUTH_TOKEN"`
	FromNumber string `yaml:"from_number" env:"FROM_NUMBER"`
}

type StorageConfig struct {
	Bucket        string `yaml:"bucket" env:"BUCKET"`
	Region        string `yaml:"region" env:"REGION"`
	Endpoint      string `yaml:"endpoint" env:"ENDPOINT"`
	AccessKey     string `yaml:"access_key" env:"ACCESS_KEY"`
	SecretKey     string `yaml:"secret_key" env:"SECRET_KEY"`
	PublicBaseURL string `yaml:"public_base_url" env:"PUBLIC_BASE_URL"`
	PresignTTL    string `yaml:"presign_ttl" env:"PRESIGN_TTL"`
}

// ConfigFile mirrors config.yml. Every field can be overridden by a NIDHI_*
// environment variable, e.g. NIDHI_AUTH_ACCESS_SECRET.
type ConfigFile struct {
	App      AppConfig      `yaml:"app" envPrefix:"APP_"`
	Database DatabaseConfig `yaml:"database" envPrefix:"DATABASE_"`
	Redis    RedisConfig    `yaml:"redis" envPrefix:"REDIS_"`
	Auth     AuthConfig     `yaml:"auth" envPrefix:"AUTH_"`
	Twilio   TwilioConfig   `yaml:"twilio" envPrefix:"TWILIO_"`
	Storage  StorageConfig  `yaml:"storage" envPrefix:"STORAGE_"`
}

type Config struct {
	Port        string
	GinMode     string
	Env         string
	LogLevel    string
	CORSOrigins []string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AccessSecret      string
	RefreshSecret     string
	JWTIssuer         string
	AccessTTL         time.Duration
	RefreshTTL        time.Duration
	BcryptCost        int
	RevocationEnabled bool

	TwilioSID   string
	TwilioToken string
	TwilioFrom  string

	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
	S3PresignTTL    time.Duration
}

// IsProduction reports whether cookies and logs should use production settings
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func defaults() ConfigFile {
	return ConfigFile{
		App: AppConfig{
			Port:     8080,
			GinMode:  "release",
			Env:      "development",
			LogLevel: "info",
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Auth: AuthConfig{
			Issuer:     "aakasmik-nidhi",
			AccessTTL:  "15m",
			RefreshTTL: "168h",
			BcryptCost: 10,
		},
		Storage: StorageConfig{
			Region:     "ap-south-1",
			PresignTTL: "15m",
		},
	}
}

// Load reads the YAML file at path (missing file is allowed), an optional
// .env file, and NIDHI_* environment overrides, then validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	file := defaults()
	if err := loadConfigFile(path, &file); err != nil {
		return nil, err
	}

	if err := env.ParseWithOptions(&file, env.Options{Prefix: "NIDHI_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg, err := build(file)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadConfigFile(path string, into *ConfigFile) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(bytes, into); err != nil {
		return fmt.Errorf("could not parse config yaml: %w", err)
	}
	return nil
}

func build(f ConfigFile) (*Config, error) {
	accTTL, err := time.ParseDuration(f.Auth.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid access TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(f.Auth.RefreshTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh TTL: %w", err)
	}

	presignTTL, err := time.ParseDuration(f.Storage.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid presign TTL: %w", err)
	}

	return &Config{
		Port:              fmt.Sprintf("%d", f.App.Port),
		GinMode:           f.App.GinMode,
		Env:               strings.ToLower(f.App.Env),
		LogLevel:          f.App.LogLevel,
		CORSOrigins:       f.App.CORSOrigins,
		DSN:               f.Database.DSN,
		RedisAddr:         f.Redis.Addr,
		RedisPassword:     f.Redis.Password,
		RedisDB:           f.Redis.DB,
		AccessSecret:      f.Auth.AccessSecret,
		RefreshSecret:     f.Auth.RefreshSecret,
		JWTIssuer:         f.Auth.Issuer,
		AccessTTL:         accTTL,
		RefreshTTL:        refTTL,
		BcryptCost:        f.Auth.BcryptCost,
		RevocationEnabled: f.Auth.RevocationEnabled,
		TwilioSID:         f.Twilio.AccountSID,
		TwilioToken:       f.Twilio.AuthToken,
		TwilioFrom:        f.Twilio.FromNumber,
		S3Bucket:          f.Storage.Bucket,
		S3Region:          f.Storage.Region,
		S3Endpoint:        f.Storage.Endpoint,
		S3AccessKey:       f.Storage.AccessKey,
		S3SecretKey:       f.Storage.SecretKey,
		S3PublicBaseURL:   f.Storage.PublicBaseURL,
		S3PresignTTL:      presignTTL,
	}, nil
}

// Validate rejects configurations the service cannot run safely with
func (c *Config) Validate() error {
	var errs []error
	if c.DSN == "" {
		errs = append(errs, errors.New("database dsn is required"))
	}
	if c.AccessSecret == "" {
		errs = append(errs, errors.New("auth access_secret is required"))
	}
	if c.RefreshSecret == "" {
		errs = append(errs, errors.New("auth refresh_secret is required"))
	}
	if c.AccessSecret != "" && c.AccessSecret == c.RefreshSecret {
		errs = append(errs, errors.New("auth access_secret and refresh_secret must differ"))
	}
	if c.AccessTTL <= 0 {
		errs = append(errs, errors.New("auth access_ttl must be positive"))
	}
	if c.RefreshTTL <= 0 {
		errs = append(errs, errors.New("auth refresh_ttl must be positive"))
	}
	if c.RevocationEnabled && c.RedisAddr == "" {
		errs = append(errs, errors.New("redis addr is required when revocation is enabled"))
	}
	return errors.Join(errs...)
}
