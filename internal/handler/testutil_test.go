package handler

import (
	"database/sql"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
)

// Handlers are exercised directly against in-memory sqlite stores; the
// DDL mirrors internal/database with sqlite types.

const usersDDL = `
CREATE TABLE users (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

const listingDDL = `
CREATE TABLE locations (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  placeID TEXT NOT NULL,
  primaryAddress TEXT NOT NULL,
  secondaryAddress TEXT,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
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

func openTestDB(t *testing.T, ddl string) *sql.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	for _, stmt := range strings.Split(ddl, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}
	return db
}

// call invokes a handler func through a fresh echo context and returns
// the recorder, failing the test if the handler itself errors.
func call(t *testing.T, h echo.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}
