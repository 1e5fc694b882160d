package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/nine-hub/api/api"
	"github.com/nine-hub/api/scheduler"
)

// Settings is everything read from the environment (and .env) at start-up
type Settings struct {
	API            api.Config
	LoopsFormID    string
	ExpirySchedule string
	ExpiryGrace    time.Duration
	StorePath      string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_port", ":8080")
	v.SetDefault("db_type", "postgres")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "ninehub")
	v.SetDefault("ssl_mode", "disable")
	v.SetDefault("jwt_secret", "your-secret-key-change-this")
	v.SetDefault("jwt_access_duration", 900) // 15 minutes
	v.SetDefault("jwt_domain", "")
	v.SetDefault("admin_key_hash", "")
	v.SetDefault("allowed_origins", "https://ninehub.dev")
	v.SetDefault("dev_mode", false)
	v.SetDefault("fastspring_webhook_secret", "")
	v.SetDefault("loops_form_id", "")
	v.SetDefault("expiry_schedule", scheduler.DefaultSchedule)
	v.SetDefault("expiry_grace", scheduler.DefaultGrace.String())
	v.SetDefault("store_path", ".ninehub/store.json")
}

// LoadSettings loads .env if present, then reads the environment over the defaults
func LoadSettings() (Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	grace, err := time.ParseDuration(v.GetString("expiry_grace"))
	if err != nil {
		return Settings{}, fmt.Errorf("EXPIRY_GRACE: %w", err)
	}

	return Settings{
		API: api.Config{
			HTTPPort:          v.GetString("http_port"),
			DatabaseType:      v.GetString("db_type"),
			DatabaseHost:      v.GetString("db_host"),
			DatabaseUser:      v.GetString("db_user"),
			DatabasePassword:  v.GetString("db_password"),
			DatabaseName:      v.GetString("db_name"),
			SSLMode:           v.GetString("ssl_mode"),
			JwtSecret:         v.GetString("jwt_secret"),
			JwtAccessDuration: v.GetInt("jwt_access_duration"),
			JwtDomain:         v.GetString("jwt_domain"),
			AdminKeyHash:      v.GetString("admin_key_hash"),
			AllowedOrigins:    splitList(v.GetString("allowed_origins")),
			DevMode:           v.GetBool("dev_mode"),
			WebhookSecret:     v.GetString("fastspring_webhook_secret"),
		},
		LoopsFormID:    v.GetString("loops_form_id"),
		ExpirySchedule: v.GetString("expiry_schedule"),
		ExpiryGrace:    grace,
		StorePath:      v.GetString("store_path"),
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// newLogger builds a console logger in dev mode and JSON otherwise
func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	return cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
}
