package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loading/cmd"
	httpin "loading/internal/adapters/in/http"
	"loading/internal/adapters/out/postgres"
	"loading/internal/pkg/metrics"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	db, err := postgres.Open(configs.DatabaseOptions())
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)
	defer func() {
		_ = app.Close()
	}()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	loadDotEnv()

	config := cmd.Config{
		HTTPPort:          os.Getenv("HTTP_PORT"),
		DBDriver:          os.Getenv("DB_DRIVER"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         os.Getenv("DB_SSLMODE"),
		SQLitePath:        os.Getenv("SQLITE_PATH"),
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPPort:          os.Getenv("SMTP_PORT"),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:          os.Getenv("SMTP_FROM"),
		AlertWebhookURL:   os.Getenv("ALERT_WEBHOOK_URL"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisChannel:      os.Getenv("REDIS_CHANNEL"),
		AlertResetCron:    os.Getenv("ALERT_RESET_CRON"),
		StaleLoadingCron:  os.Getenv("STALE_LOADING_CRON"),
		StaleLoadingAfter: os.Getenv("STALE_LOADING_AFTER"),
		MetricsEnabled:    os.Getenv("METRICS_ENABLED"),
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	return config
}

// loadDotEnv reads .env when present; the process environment wins either way.
func loadDotEnv() {
	err := godotenv.Load(".env")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	if err := httpin.RegisterSwaggerDoc(); err != nil {
		log.Fatalf("failed to load OpenAPI document: %v", err)
	}

	e := httpin.NewRouter(app.CreateServer())

	if configs.MetricsOn() {
		metrics.Register(prometheus.DefaultRegisterer)
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Error(err)
	}
}
