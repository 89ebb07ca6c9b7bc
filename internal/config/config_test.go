package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "3001" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.PublicURL != "http://localhost:3001" {
		t.Errorf("PublicURL = %q", cfg.PublicURL)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v", cfg.TokenTTL)
	}
	if cfg.Mail.Host != "smtp.gmail.com" || cfg.Mail.Port != 587 {
		t.Errorf("Mail = %+v", cfg.Mail)
	}
	if cfg.Admin.Username != "admin" || cfg.Admin.Email != "admin@thavmasolutions.com" {
		t.Errorf("Admin = %+v", cfg.Admin)
	}
	if cfg.UploadDir != "uploads" {
		t.Errorf("UploadDir = %q", cfg.UploadDir)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yml := []byte("port: 8080\npublic_url: https://file.example.com/\ncors:\n  origins:\n    - https://a.example.com\nmail:\n  user: file@example.com\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), yml, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("SERVER_URL", "https://api.example.com/")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("EMAIL_USER", "me@example.com")
	t.Setenv("DATABASE_URL", "/data/site.db")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want from file", cfg.Port)
	}
	if cfg.PublicURL != "https://api.example.com" {
		t.Errorf("PublicURL = %q", cfg.PublicURL)
	}
	if cfg.JWTSecret != "s3cret" || cfg.Mail.Username != "me@example.com" || cfg.DBPath != "/data/site.db" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://a.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("TOKEN_TTL", "-1h")
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("expected error for negative ttl")
	}
}

func TestSplitNonEmpty(t *testing.T) {
	got := splitNonEmpty([]string{"a.com, b.com", " ", "c.com"})
	if len(got) != 3 || got[0] != "a.com" || got[1] != "b.com" || got[2] != "c.com" {
		t.Fatalf("splitNonEmpty = %v", got)
	}
}
