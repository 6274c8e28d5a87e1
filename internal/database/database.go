package database

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/yukikurage/empleo-joven-api/internal/config"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the connection pool described by cfg. The caller owns the
// returned handle and must release it with Close.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if cfg.GinMode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	slog.Info("database connection established", slog.String("driver", cfg.DBDriver))
	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
				cfg.DBHost,
				cfg.DBPort,
				cfg.DBUser,
				cfg.DBPassword,
				cfg.DBName,
				cfg.DBSSLMode,
			)
		}
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
				cfg.DBUser,
				cfg.DBPassword,
				cfg.DBHost,
				cfg.DBPort,
				cfg.DBName,
			)
		}
		return mysql.Open(WithDSNParam(dsn, "clientFoundRows", "true")), nil
	case "sqlite":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = cfg.DBName + ".db"
		}
		return sqlite.Open(SQLiteDSN(dsn)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// SQLiteDSN turns on foreign key enforcement for every connection opened
// from dsn. Without it SQLite ignores ON DELETE CASCADE.
func SQLiteDSN(dsn string) string {
	return WithDSNParam(dsn, "_foreign_keys", "on")
}

// WithDSNParam appends key=value to the query part of dsn unless key is
// already set.
func WithDSNParam(dsn, key, value string) string {
	query := ""
	if i := strings.IndexByte(dsn, '?'); i >= 0 {
		query = dsn[i+1:]
	}
	for _, pair := range strings.Split(query, "&") {
		if name, _, _ := strings.Cut(pair, "="); name == key {
			return dsn
		}
	}

	sep := "?"
	switch {
	case strings.HasSuffix(dsn, "?") || strings.HasSuffix(dsn, "&"):
		sep = ""
	case strings.Contains(dsn, "?"):
		sep = "&"
	}
	return dsn + sep + key + "=" + value
}
