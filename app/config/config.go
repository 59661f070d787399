// Package config resolves process settings from the environment, with an
// optional .env file, falling back to development defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DefaultPort             = "5000"
	DefaultDatabaseURL      = "sqlite:///site.db"
	DefaultAdminToken       = "admin-token-change-in-production"
	DefaultUploadFolder     = "uploads"
	DefaultMaxContentLength = 16 * 1024 * 1024
	DefaultServiceName      = "catalog-api"
	DefaultMediaBucket      = "uploads"
)

var developmentOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

type Config struct {
	Env              string
	Port             string
	DatabaseURL      string
	AdminToken       string
	CORSOrigins      []string
	UploadFolder     string
	MaxContentLength int64
	AutoSeed         bool
	ServiceName      string
	Media            MediaConfig
	Logger           LoggerConfig

	// Warnings lists settings that were malformed and replaced by defaults.
	Warnings []string
}

// MediaConfig points at an S3-compatible media host. Uploads go there when
// Endpoint is set.
type MediaConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

func (m MediaConfig) Enabled() bool {
	return m.Endpoint != ""
}

type LoggerConfig struct {
	Mode     string
	Filename string
}

// Load reads .env from the working directory, if present, and then the
// process environment.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) *Config {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Env:          strings.ToLower(env("APP_ENV", EnvDevelopment)),
		Port:         env("PORT", DefaultPort),
		DatabaseURL:  env("DATABASE_URL", DefaultDatabaseURL),
		AdminToken:   env("ADMIN_TOKEN", DefaultAdminToken),
		UploadFolder: env("UPLOAD_FOLDER", DefaultUploadFolder),
		ServiceName:  env("SERVICE_NAME", DefaultServiceName),
		Media: MediaConfig{
			Endpoint:  env("MEDIA_ENDPOINT", ""),
			AccessKey: env("MEDIA_ACCESS_KEY", ""),
			SecretKey: env("MEDIA_SECRET_KEY", ""),
			Bucket:    env("MEDIA_BUCKET", DefaultMediaBucket),
			PublicURL: strings.TrimRight(env("MEDIA_PUBLIC_URL", ""), "/"),
		},
		Logger: LoggerConfig{
			Mode:     env("LOG_MODE", EnvDevelopment),
			Filename: env("LOG_FILE", ""),
		},
	}

	// PORT may be given as ":8080" or "8080".
	cfg.Port = strings.TrimPrefix(cfg.Port, ":")

	cfg.MaxContentLength = DefaultMaxContentLength
	if v := env("MAX_CONTENT_LENGTH", ""); v != "" {
		n, err := cast.ToInt64E(v)
		if err != nil || n <= 0 {
			cfg.warnf("MAX_CONTENT_LENGTH=%q is not a positive integer, using %d", v, cfg.MaxContentLength)
		} else {
			cfg.MaxContentLength = n
		}
	}

	cfg.AutoSeed = cfg.boolEnv(env, "AUTO_SEED", false)
	cfg.Media.UseSSL = cfg.boolEnv(env, "MEDIA_USE_SSL", true)

	if v := env("CORS_ORIGINS", ""); v != "" {
		cfg.CORSOrigins = splitList(v)
	} else if !cfg.IsProduction() {
		cfg.CORSOrigins = append([]string(nil), developmentOrigins...)
	}

	if cfg.IsProduction() {
		if len(cfg.CORSOrigins) == 0 {
			cfg.warnf("CORS_ORIGINS is not set, cross-origin requests will be refused")
		}
		if cfg.AdminToken == DefaultAdminToken {
			cfg.warnf("ADMIN_TOKEN is not set, the default token is in use")
		}
	}
	return cfg
}

// IsProduction reports whether APP_ENV selects the production profile.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) boolEnv(env func(string, string) string, key string, fallback bool) bool {
	v := env(key, "")
	if v == "" {
		return fallback
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		c.warnf("%s=%q is not a boolean, using %t", key, v, fallback)
		return fallback
	}
	return b
}

func (c *Config) warnf(format string, args ...any) {
	c.Warnings = append(c.Warnings, fmt.Sprintf(format, args...))
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
