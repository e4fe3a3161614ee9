package cmd

import (
	"strconv"
	"strings"
	"time"

	"loading/internal/adapters/out/postgres"

	"gorm.io/gorm/logger"
)

type Config struct {
	HTTPPort string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	AlertWebhookURL string

	RedisAddr    string
	RedisChannel string

	AlertResetCron    string
	StaleLoadingCron  string
	StaleLoadingAfter string

	MetricsEnabled string
}

// DatabaseOptions translates the DB_* keys into connection options.
func (c Config) DatabaseOptions() postgres.Options {
	return postgres.Options{
		Driver:     c.DBDriver,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		Name:       c.DBName,
		SSLMode:    c.DBSslMode,
		SQLitePath: c.SQLitePath,
		LogLevel:   logger.Warn,
	}
}

// SMTPPortNumber defaults to 25 when SMTP_PORT is empty or malformed.
func (c Config) SMTPPortNumber() int {
	port, err := strconv.Atoi(strings.TrimSpace(c.SMTPPort))
	if err != nil || port <= 0 {
		return 25
	}
	return port
}

// StaleLoadingAge parses STALE_LOADING_AFTER; zero lets the job pick its default.
func (c Config) StaleLoadingAge() time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(c.StaleLoadingAfter))
	if err != nil {
		return 0
	}
	return d
}

func (c Config) MetricsOn() bool {
	on, err := strconv.ParseBool(strings.TrimSpace(c.MetricsEnabled))
	if err != nil {
		return true
	}
	return on
}
