package database

import (
	"database/sql"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func Open(url string) (db *sql.DB, err error) {
	db, err = sql.Open("sqlite3", dsn(url))
	if err != nil {
		return
	}

	// db tuning options
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	err = migrateDB(db)
	if err != nil {
		db.Close()
		return
	}

	return
}

// dsn appends the connection parameters every pooled connection must carry.
// A PRAGMA issued through db.Exec would reach a single pooled connection only.
func dsn(url string) string {
	params := "_foreign_keys=on&_busy_timeout=5000"
	if strings.Contains(url, "?") {
		return url + "&" + params
	}
	return url + "?" + params
}
