package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"worklog-service/internal/logging"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultPort   = "8080"
	DefaultDBPath = "work_log.db"

	// sqliteBusyTimeoutMs bounds how long a writer waits on the file lock.
	sqliteBusyTimeoutMs = 5000
)

// Config holds all configuration values from environment.
type Config struct {
	AppPort string

	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioSSL       bool

	LogLevel slog.Level
	LogJSON  bool
}

// LoadConfig loads configuration from environment variables, reading a .env
// file in the working directory first when one exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %v", err)
	}

	minioSSL := false
	if sslEnv := os.Getenv("MINIO_SSL"); sslEnv != "" {
		val, err := strconv.ParseBool(sslEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid MINIO_SSL value: %v", err)
		}
		minioSSL = val
	}
	level, err := logging.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL value: %v", err)
	}
	logJSON := false
	switch format := strings.ToLower(os.Getenv("LOG_FORMAT")); format {
	case "", "text":
	case "json":
		logJSON = true
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT value: %q", format)
	}

	cfg := &Config{
		AppPort:        envOr("WORKLOG_PORT", DefaultPort),
		DBDriver:       strings.ToLower(envOr("DB_DRIVER", DriverSQLite)),
		DBPath:         envOr("DB_PATH", DefaultDBPath),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         envOr("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    os.Getenv("MINIO_BUCKET"),
		MinioSSL:       minioSSL,
		LogLevel:       level,
		LogJSON:        logJSON,
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBPath == "" {
			return nil, fmt.Errorf("database path is empty")
		}
	case DriverPostgres:
		if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
			return nil, fmt.Errorf("database configuration is incomplete")
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	minioSet := 0
	for _, v := range []string{cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket} {
		if v != "" {
			minioSet++
		}
	}
	if minioSet != 0 && minioSet != 4 {
		return nil, fmt.Errorf("minio configuration is incomplete")
	}
	return cfg, nil
}

// MinioEnabled reports whether an export bucket is configured.
func (c *Config) MinioEnabled() bool {
	return c.MinioEndpoint != ""
}

// ConnectDatabase opens the work log store. Idle connections are not kept, so
// every connection handed out by the pool is opened for one operation and
// closed once that operation releases it.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: SQLiteDSN(cfg.DBPath)})
	}

	gormLogLevel := logger.Silent
	if cfg.LogLevel <= slog.LevelDebug {
		gormLogLevel = logger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(gormLogLevel),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(0)
	return db, nil
}

// SQLiteDSN appends the per-connection pragmas to a database file path.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", path, sep, sqliteBusyTimeoutMs)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
