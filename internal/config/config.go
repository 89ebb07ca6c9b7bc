package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	Port      string
	PublicURL string
	LogLevel  string

	DBPath string

	JWTSecret string
	TokenTTL  time.Duration

	UploadDir string

	CORSOrigins []string

	Mail  MailConfig
	Admin AdminConfig

	Server ServerConfig
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Subject  string
}

// AdminConfig is the credential the bootstrap command seeds.
type AdminConfig struct {
	Username string
	Password string
	Email    string
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// env names kept compatible with the existing deployment.
var envBindings = map[string][]string{
	"port":                       {"PORT"},
	"public_url":                 {"SERVER_URL"},
	"log.level":                  {"LOG_LEVEL"},
	"db.path":                    {"DATABASE_URL", "DB_PATH"},
	"auth.jwt_secret":            {"JWT_SECRET"},
	"auth.token_ttl":             {"TOKEN_TTL"},
	"upload.dir":                 {"UPLOAD_DIR"},
	"cors.origins":               {"CORS_ORIGINS"},
	"mail.host":                  {"SMTP_HOST"},
	"mail.port":                  {"SMTP_PORT"},
	"mail.user":                  {"EMAIL_USER"},
	"mail.pass":                  {"EMAIL_PASS"},
	"mail.from":                  {"EMAIL_FROM"},
	"mail.subject":               {"EMAIL_SUBJECT"},
	"admin.username":             {"ADMIN_USERNAME"},
	"admin.password":             {"ADMIN_PASSWORD"},
	"admin.email":                {"ADMIN_EMAIL"},
	"server.read_header_timeout": {"SERVER_READ_HEADER_TIMEOUT"},
	"server.write_timeout":       {"SERVER_WRITE_TIMEOUT"},
	"server.idle_timeout":        {"SERVER_IDLE_TIMEOUT"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3001")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("auth.jwt_secret", "your-secret-key")
	v.SetDefault("auth.token_ttl", "24h")
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("mail.host", "smtp.gmail.com")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.subject", "Response from Thavma Solutions")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "password")
	v.SetDefault("admin.email", "admin@thavmasolutions.com")
	v.SetDefault("server.read_header_timeout", "10s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "60s")
}

// Load reads .env (if any), then dir/config.yml (if any), then the
// environment. Later sources win.
func Load(dir string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env for %s: %w", key, err)
		}
	}

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:      strings.TrimPrefix(v.GetString("port"), ":"),
		PublicURL: strings.TrimRight(v.GetString("public_url"), "/"),
		LogLevel:  strings.ToLower(v.GetString("log.level")),
		DBPath:    v.GetString("db.path"),
		JWTSecret: v.GetString("auth.jwt_secret"),
		TokenTTL:  v.GetDuration("auth.token_ttl"),
		UploadDir: v.GetString("upload.dir"),
		Mail: MailConfig{
			Host:     v.GetString("mail.host"),
			Port:     v.GetInt("mail.port"),
			Username: v.GetString("mail.user"),
			Password: v.GetString("mail.pass"),
			From:     v.GetString("mail.from"),
			Subject:  v.GetString("mail.subject"),
		},
		Admin: AdminConfig{
			Username: v.GetString("admin.username"),
			Password: v.GetString("admin.password"),
			Email:    v.GetString("admin.email"),
		},
		Server: ServerConfig{
			ReadHeaderTimeout: v.GetDuration("server.read_header_timeout"),
			WriteTimeout:      v.GetDuration("server.write_timeout"),
			IdleTimeout:       v.GetDuration("server.idle_timeout"),
		},
	}
	cfg.CORSOrigins = splitNonEmpty(v.GetStringSlice("cors.origins"))

	if cfg.PublicURL == "" {
		cfg.PublicURL = "http://localhost:" + cfg.Port
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("auth.token_ttl must be positive, got %v", cfg.TokenTTL)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("auth.jwt_secret must not be empty")
	}
	return cfg, nil
}

// splitNonEmpty flattens comma-separated entries, so env values like
// "a.com, b.com" and YAML lists both work.
func splitNonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
