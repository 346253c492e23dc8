package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	Database DatabaseConfig `yaml:"database"`
	Sessions SessionsConfig `yaml:"sessions"`
	Log      LogConfig      `yaml:"log"`
}

// TelegramConfig holds Bot API settings.
type TelegramConfig struct {
	Token string `yaml:"token" env:"TELEGRAM_TOKEN" env-required:"true"`
	// BotUsername is used to build share links and must not carry a
	// leading "@".
	BotUsername string `yaml:"bot_username"  env:"TELEGRAM_BOT_USERNAME" env-required:"true"`
	// AdminChatID, when set, receives a notification on startup.
	AdminChatID int64 `yaml:"admin_chat_id" env:"TELEGRAM_ADMIN_CHAT_ID" env-default:"0"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// SessionsConfig holds settings for the embedded session state database.
type SessionsConfig struct {
	Path string `yaml:"path" env:"SESSIONS_PATH" env-default:"./data/sessions"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
