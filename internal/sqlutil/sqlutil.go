package sqlutil

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

type Config struct {
	Hostname     string
	DatabaseName string
	Username     string
	Password     string
}

// Connect Opens a MySQL connection pool and verifies it can reach the server
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	c := mysql.Config{
		User:                 cfg.Username,
		Passwd:               cfg.Password,
		Net:                  "tcp",
		Addr:                 cfg.Hostname,
		DBName:               cfg.DatabaseName,
		Loc:                  time.UTC,
		MaxAllowedPacket:     64 << 20, // same as mysql.defaultMaxAllowedPacket
		ParseTime:            true,
		AllowNativePasswords: true,
		CheckConnLiveness:    true,
	}

	db, err := sql.Open("mysql", c.FormatDSN())
	if err != nil {
		return nil, err
	}

	db.SetConnMaxIdleTime(15 * time.Minute)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach database at %s: %w", cfg.Hostname, err)
	}

	return db, nil
}
