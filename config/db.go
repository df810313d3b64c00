package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the configured database. DB_DRIVER selects the dialect:
// "sqlite" (default, file given by DB_PATH) or "mysql" (MYSQL_DSN or
// MYSQL_* parts). The handle is constructed here once and injected into
// services by the entry point.
func NewDB() (*gorm.DB, error) {
	logMode := logger.Info
	if os.Getenv("GORM_LOG") == "off" {
		logMode = logger.Silent
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logMode,
			Colorful:      true,
		},
	)

	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		dsn := os.Getenv("MYSQL_DSN")
		if dsn == "" {
			user := os.Getenv("MYSQL_USER")
			pass := os.Getenv("MYSQL_PASS")
			host := os.Getenv("MYSQL_HOST")
			port := os.Getenv("MYSQL_PORT")
			db := os.Getenv("MYSQL_DB")
			if port == "" {
				port = "3306"
			}
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=Local", user, pass, host, port, db)
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "comercio.db"
		}
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormLogger})
		if err != nil {
			return nil, err
		}
		db.Exec("PRAGMA journal_mode=WAL")
		db.Exec("PRAGMA busy_timeout=5000")
		return db, nil
	}
}
