package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv(envOf(nil))

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, DefaultDatabaseURL, cfg.DatabaseURL)
	assert.Equal(t, DefaultAdminToken, cfg.AdminToken)
	assert.Equal(t, DefaultUploadFolder, cfg.UploadFolder)
	assert.Equal(t, int64(DefaultMaxContentLength), cfg.MaxContentLength)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORSOrigins)
	assert.False(t, cfg.AutoSeed)
	assert.False(t, cfg.Media.Enabled())
	assert.True(t, cfg.Media.UseSSL)
	assert.Empty(t, cfg.Warnings)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg := FromEnv(envOf(map[string]string{
		"APP_ENV":            "Production",
		"PORT":               ":8080",
		"DATABASE_URL":       "postgres://u:p@db/site",
		"ADMIN_TOKEN":        "s3cret",
		"CORS_ORIGINS":       " https://a.example , ,https://b.example",
		"UPLOAD_FOLDER":      "/var/uploads",
		"MAX_CONTENT_LENGTH": "1024",
		"AUTO_SEED":          "true",
		"MEDIA_ENDPOINT":     "s3.example.com",
		"MEDIA_USE_SSL":      "false",
		"MEDIA_PUBLIC_URL":   "https://cdn.example.com/",
	}))

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres://u:p@db/site", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.AdminToken)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "/var/uploads", cfg.UploadFolder)
	assert.Equal(t, int64(1024), cfg.MaxContentLength)
	assert.True(t, cfg.AutoSeed)
	assert.True(t, cfg.Media.Enabled())
	assert.False(t, cfg.Media.UseSSL)
	assert.Equal(t, "https://cdn.example.com", cfg.Media.PublicURL)
	assert.Empty(t, cfg.Warnings)
}

func TestFromEnv_MalformedValuesFallBack(t *testing.T) {
	cfg := FromEnv(envOf(map[string]string{
		"APP_ENV":            "production",
		"MAX_CONTENT_LENGTH": "lots",
		"AUTO_SEED":          "maybe",
	}))

	assert.Equal(t, int64(DefaultMaxContentLength), cfg.MaxContentLength)
	assert.False(t, cfg.AutoSeed)
	assert.Empty(t, cfg.CORSOrigins, "production has no default origins")
	assert.Len(t, cfg.Warnings, 4)
}

func TestFromEnv_ProductionOrigins(t *testing.T) {
	tests := []struct {
		name        string
		origins     string
		wantOrigins []string
		wantWarning bool
	}{
		{name: "Unset", wantWarning: true},
		{name: "Listed", origins: "https://shop.example", wantOrigins: []string{"https://shop.example"}},
		{name: "Wildcard", origins: "*", wantOrigins: []string{"*"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FromEnv(envOf(map[string]string{
				"APP_ENV":      "production",
				"ADMIN_TOKEN":  "s3cret",
				"CORS_ORIGINS": tt.origins,
			}))

			assert.True(t, cfg.IsProduction())
			assert.Equal(t, tt.wantOrigins, cfg.CORSOrigins)
			if tt.wantWarning {
				assert.Equal(t, []string{"CORS_ORIGINS is not set, cross-origin requests will be refused"}, cfg.Warnings)
			} else {
				assert.Empty(t, cfg.Warnings)
			}
		})
	}
}
