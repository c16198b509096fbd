package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testYAML = `
app:
  port: 9090
  gin_mode: release
  base_url: http://cms.example.com

database:
  dsn: "host=db user=cms dbname=cms port=5432"

redis:
  addr: "redis:6379"
  password: "file-pass"
  db: 3

jwt:
  secret: file-secret
  issuer: profilecms
  short_ttl: 24h
  extended_ttl: 720h

cookie:
  name: cms_session
  domain: cms.example.com
  secure: true

session:
  check_timeout: 2s

upload:
  dir: ./uploads
  max_size_mb: 5
  allowed_exts: [".jpg", ".png"]

twilio:
  account_sid: AC123
  auth_token: tok
  from_number: "+15550000000"
  notify_to: "+15550001111"

casbin:
  model_path: config/rbac_model.conf
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, testYAML))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Errorf("GinMode = %q, want release", cfg.GinMode)
	}
	if cfg.ShortTTL != 24*time.Hour {
		t.Errorf("ShortTTL = %v, want 24h", cfg.ShortTTL)
	}
	if cfg.ExtendedTTL != 720*time.Hour {
		t.Errorf("ExtendedTTL = %v, want 720h", cfg.ExtendedTTL)
	}
	if cfg.SessionCheckTimeout != 2*time.Second {
		t.Errorf("SessionCheckTimeout = %v, want 2s", cfg.SessionCheckTimeout)
	}
	if cfg.UploadMaxBytes != 5<<20 {
		t.Errorf("UploadMaxBytes = %d, want %d", cfg.UploadMaxBytes, 5<<20)
	}
	if len(cfg.UploadAllowedExts) != 2 || cfg.UploadAllowedExts[0] != ".jpg" {
		t.Errorf("UploadAllowedExts = %v", cfg.UploadAllowedExts)
	}
	if cfg.CookieName != "cms_session" || !cfg.CookieSecure {
		t.Errorf("cookie config not loaded: %q secure=%v", cfg.CookieName, cfg.CookieSecure)
	}
	if cfg.TwilioNotifyTo != "+15550001111" {
		t.Errorf("TwilioNotifyTo = %q", cfg.TwilioNotifyTo)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("RedisDB = %d, want 3", cfg.RedisDB)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", writeConfig(t, testYAML))
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DATABASE_DSN", "host=other")
	t.Setenv("REDIS_ADDR", "other:6379")
	t.Setenv("REDIS_DB", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.JWTSecret != "env-secret" {
		t.Errorf("JWTSecret = %q, env override should win", cfg.JWTSecret)
	}
	if cfg.DSN != "host=other" {
		t.Errorf("DSN = %q, env override should win", cfg.DSN)
	}
	if cfg.RedisAddr != "other:6379" {
		t.Errorf("RedisAddr = %q, env override should win", cfg.RedisAddr)
	}
	if cfg.RedisDB != 7 {
		t.Errorf("RedisDB = %d, want 7", cfg.RedisDB)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		envs    map[string]string
		wantErr string
	}{
		{
			name:    "missing jwt secret",
			mutate:  func(s string) string { return strings.Replace(s, "secret: file-secret", `secret: ""`, 1) },
			wantErr: "jwt secret is required",
		},
		{
			name:    "bad short ttl",
			mutate:  func(s string) string { return strings.Replace(s, "short_ttl: 24h", "short_ttl: soon", 1) },
			wantErr: "invalid JWT short TTL",
		},
		{
			name:    "bad session timeout",
			mutate:  func(s string) string { return strings.Replace(s, "check_timeout: 2s", "check_timeout: fast", 1) },
			wantErr: "invalid session check timeout",
		},
		{
			name:    "bad redis db override",
			mutate:  func(s string) string { return s },
			envs:    map[string]string{"REDIS_DB": "not-a-number"},
			wantErr: "invalid REDIS_DB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_PATH", writeConfig(t, tt.mutate(testYAML)))
			t.Setenv("JWT_SECRET", "")
			for k, v := range tt.envs {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yml"))

	_, err := Load()
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoad_DefaultsUploadSize(t *testing.T) {
	contents := strings.Replace(testYAML, "max_size_mb: 5", "max_size_mb: 0", 1)
	t.Setenv("CONFIG_PATH", writeConfig(t, contents))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.UploadMaxBytes != 10<<20 {
		t.Errorf("UploadMaxBytes = %d, want default %d", cfg.UploadMaxBytes, 10<<20)
	}
}
