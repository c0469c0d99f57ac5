package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	ServiceName string
	LoggerLevel string
	GinMode     string

	AppPort int

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresMaxConns int32
	MigrationsPath   string

	TelegramBotToken string
	DispatchChatID   int64

	ServerURL     string
	ClientTimeout time.Duration
}

func Load() Config {
	_ = godotenv.Load(".env")

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "ride-request"))
	cfg.LoggerLevel = cast.ToString(getOrReturnDefault("LOGGER_LEVEL", "debug"))
	cfg.GinMode = cast.ToString(getOrReturnDefault("GIN_MODE", "release"))
	cfg.AppPort = cast.ToInt(getOrReturnDefault("APP_PORT", 3000))

	cfg.PostgresHost = cast.ToString(getOrReturnDefault("POSTGRES_HOST", "localhost"))
	cfg.PostgresPort = cast.ToString(getOrReturnDefault("POSTGRES_PORT", "5432"))
	cfg.PostgresUser = cast.ToString(getOrReturnDefault("POSTGRES_USER", "postgres"))
	cfg.PostgresPassword = cast.ToString(getOrReturnDefault("POSTGRES_PASSWORD", "postgres"))
	cfg.PostgresDB = cast.ToString(getOrReturnDefault("POSTGRES_DB", "ride_requests"))
	cfg.PostgresMaxConns = cast.ToInt32(getOrReturnDefault("POSTGRES_MAX_CONNS", 10))
	cfg.MigrationsPath = cast.ToString(getOrReturnDefault("MIGRATIONS_PATH", "./migrations"))

	cfg.TelegramBotToken = cast.ToString(getOrReturnDefault("TG_BOT_TOKEN", ""))
	cfg.DispatchChatID = cast.ToInt64(getOrReturnDefault("DISPATCH_CHAT_ID", 0))

	cfg.ServerURL = cast.ToString(getOrReturnDefault("SERVER_URL", "http://localhost:3000"))
	cfg.ClientTimeout = time.Duration(cast.ToInt(getOrReturnDefault("CLIENT_TIMEOUT_SECONDS", 10))) * time.Second

	return cfg
}

// PostgresURL builds the connection string shared by the pool and the migrator.
func (c Config) PostgresURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PostgresUser,
		c.PostgresPassword,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
	)
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
