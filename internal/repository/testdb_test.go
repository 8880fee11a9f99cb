package repository

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// Tests run against in-memory sqlite. The DDL mirrors the MySQL schema in
// internal/database with sqlite types; ads.created_at keeps the same
// epoch-seconds default so the timestamp readback behaves identically.

const testUsersDDL = `
CREATE TABLE users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

const testLocationsDDL = `
CREATE TABLE locations (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  placeID TEXT NOT NULL,
  primaryAddress TEXT NOT NULL,
  secondaryAddress TEXT,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

const testAdsDDL = `
CREATE TABLE ads (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  locationID INTEGER NOT NULL,
  title TEXT NOT NULL,
  adType TEXT NOT NULL,
  propertyCategory TEXT NOT NULL,
  propertyCondition TEXT NOT NULL,
  propertyFloor TEXT NOT NULL,
  propertysize INTEGER NOT NULL,
  buildDate INTEGER,
  renovationDate INTEGER,
  bedrooms INTEGER,
  masterBedrooms INTEGER,
  bathrooms INTEGER,
  WC INTEGER,
  energyClass TEXT,
  price REAL NOT NULL,
  propertyZone TEXT NOT NULL,
  extraInfo TEXT,
  contactEmail TEXT NOT NULL,
  contactPhone TEXT NOT NULL,
  contactHoursFrom TEXT NOT NULL,
  contactHoursTo TEXT NOT NULL,
  created_at INTEGER NOT NULL DEFAULT (strftime('%s','now')),
  FOREIGN KEY (locationID) REFERENCES locations(id) ON DELETE CASCADE
)`

func openTestDB(t *testing.T, ddl ...string) *sql.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// one connection keeps the shared in-memory database alive
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

func openListingDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, testLocationsDDL, testAdsDDL)
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}
