package database

import (
	"context"
	"database/sql"
)

// The service creates its own tables on startup, so a fresh database needs
// nothing beyond CREATE DATABASE. Column names are camelCase because the
// frontend consumes the rows as-is.

const usersDDL = `
CREATE TABLE IF NOT EXISTS users (
  id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  email VARCHAR(255) NOT NULL UNIQUE,
  password_hash VARCHAR(255) NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB`

// No unique index on placeID: deduplication is done by the lookup inside
// the ad-creation transaction, matching the system this one replaces.
const locationsDDL = `
CREATE TABLE IF NOT EXISTS locations (
  id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  placeID VARCHAR(255) NOT NULL,
  primaryAddress VARCHAR(512) NOT NULL,
  secondaryAddress VARCHAR(512),
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB`

// ads.created_at is epoch seconds assigned by the store, not the client.
const adsDDL = `
CREATE TABLE IF NOT EXISTS ads (
  id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  locationID BIGINT UNSIGNED NOT NULL,
  title VARCHAR(255) NOT NULL,
  adType VARCHAR(64) NOT NULL,
  propertyCategory VARCHAR(64) NOT NULL,
  propertyCondition VARCHAR(64) NOT NULL,
  propertyFloor VARCHAR(32) NOT NULL,
  propertysize INT NOT NULL,
  buildDate INT,
  renovationDate INT,
  bedrooms INT,
  masterBedrooms INT,
  bathrooms INT,
  WC INT,
  energyClass VARCHAR(16),
  price DECIMAL(10,2) NOT NULL,
  propertyZone VARCHAR(64) NOT NULL,
  extraInfo TEXT,
  contactEmail VARCHAR(255) NOT NULL,
  contactPhone VARCHAR(32) NOT NULL,
  contactHoursFrom VARCHAR(16) NOT NULL,
  contactHoursTo VARCHAR(16) NOT NULL,
  created_at BIGINT NOT NULL DEFAULT (UNIX_TIMESTAMP()),
  CONSTRAINT fk_ads_location FOREIGN KEY (locationID)
    REFERENCES locations(id) ON DELETE CASCADE
) ENGINE=InnoDB`

// EnsureAuthSchema creates the users table in the credential store.
func EnsureAuthSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, usersDDL)
	return err
}

// EnsureAdsSchema creates the locations and ads tables in the listing
// store. Order matters because of the foreign key.
func EnsureAdsSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, locationsDDL); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, adsDDL)
	return err
}
