package postgres

import (
	"fmt"
	"strings"

	"loading/internal/adapters/out/postgres/alarmrepo"
	"loading/internal/adapters/out/postgres/masterrepo"
	"loading/internal/adapters/out/postgres/orderrepo"

	"github.com/glebarez/sqlite"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options selects and addresses the database.
type Options struct {
	Driver string

	// Host, Port, User, Password, Name and SSLMode build the postgres DSN.
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// SQLitePath is a file path or ":memory:".
	SQLitePath string

	// LogLevel defaults to logger.Warn.
	LogLevel logger.LogLevel
}

// DSN renders the postgres connection string.
func (o Options) DSN() string {
	sslMode := o.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		o.Host, o.Port, o.User, o.Password, o.Name, sslMode)
}

// Open connects with the configured driver. The embedded sqlite database is limited
// to one connection so that an in-memory database is shared by every caller.
func Open(o Options) (*gorm.DB, error) {
	level := o.LogLevel
	if level == 0 {
		level = logger.Warn
	}
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	}

	switch strings.ToLower(o.Driver) {
	case "", DriverPostgres:
		db, err := gorm.Open(gorm_postgres.Open(o.DSN()), cfg)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, nil

	case DriverSQLite:
		path := o.SQLitePath
		if path == "" {
			path = ":memory:"
		}
		db, err := gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", o.Driver)
	}
}

// Models lists every persisted table.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&orderrepo.OrderDetailDTO{},
		&orderrepo.StatusLogDTO{},
		&masterrepo.ClientDTO{},
		&masterrepo.DriverDTO{},
		&masterrepo.TruckDTO{},
		&masterrepo.ProductDTO{},
		&alarmrepo.AlarmDTO{},
		&alarmrepo.AlertConfigDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
