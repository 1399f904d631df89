package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	researchadapters "research_backend/internal/feature/research/adapters"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	defaultSQLitePath = "research.db"
	connectTimeout    = 60 * time.Second
	retryInterval     = 3 * time.Second
)

// Config はデータベース接続設定です。
// DatabaseURL / Host / InstanceName のいずれも空の場合は SQLite を使用します。
type Config struct {
	DatabaseURL   string
	User          string
	Password      string
	Name          string
	Host          string
	Port          string
	InstanceName  string
	SQLitePath    string
	RunMigrations bool
}

// Opener は DSN から gorm.DB を開く関数です。テストで差し替え可能です。
type Opener func(dsn string) (*gorm.DB, error)

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = defaultSQLitePath
	}
	return Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		User:          os.Getenv("DB_USER"),
		Password:      os.Getenv("DB_PASSWORD"),
		Name:          os.Getenv("DB_NAME"),
		Host:          os.Getenv("DB_HOST"),
		Port:          os.Getenv("DB_PORT"),
		InstanceName:  os.Getenv("INSTANCE_CONNECTION_NAME"),
		SQLitePath:    path,
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
	}
}

// UsesPostgres reports whether the config points at a PostgreSQL server.
func (c Config) UsesPostgres() bool {
	return c.DatabaseURL != "" || c.Host != "" || c.InstanceName != ""
}

// BuildDSN はPostgreSQL用のDSN文字列を生成します。
// DatabaseURL が設定されていればそのまま返し、InstanceName は Host/Port より優先されます。
func BuildDSN(cfg Config) string {
	if cfg.DatabaseURL != "" {
		return cfg.DatabaseURL
	}
	if cfg.InstanceName != "" {
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.InstanceName, cfg.User, cfg.Password, cfg.Name)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// ConnectWithRetry は timeout に達するまで retryInterval 間隔で接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}
}

// OpenDB は設定に応じて PostgreSQL または SQLite に接続し、必要ならマイグレーションを実行します。
func OpenDB(cfg Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if cfg.UsesPostgres() {
		db, err = ConnectWithRetry(BuildDSN(cfg), connectTimeout, func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), &gorm.Config{})
		})
	} else {
		if cfg.SQLitePath == "" {
			return nil, errors.New("sqlite path is empty")
		}
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		// ローカルファイルは常にスキーマを作成する
		cfg.RunMigrations = true
	}
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate はアプリケーションのテーブルを作成・更新します。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&researchadapters.ResearchDocumentModel{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
