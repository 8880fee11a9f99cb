package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/estate-ads/internal/model"
)

// AdRepo owns the ads table and the transactional write path that creates
// an ad together with its location.
type AdRepo struct{ DB *sql.DB }

func NewAdRepo(db *sql.DB) *AdRepo { return &AdRepo{DB: db} }

// CreateResult carries the server-assigned identifiers of a new ad. The
// timestamp is read back from the row because the store computes it, the
// client never supplies one.
type CreateResult struct {
	AdID       uint64
	LocationID uint64
	CreatedAt  int64
}

// Create runs the whole ad-creation write path in one transaction:
//
//  1. look up a location by the payload's placeID
//  2. reuse its id, or insert a new location row when absent
//  3. insert the ad referencing that location
//  4. read back the store-assigned created_at
//
// Any failing step rolls the whole transaction back and returns an error
// wrapping the matching stage sentinel, so nothing partially persists.
//
// Two concurrent calls with the same unseen placeID can both pass the
// lookup and insert duplicate location rows; there is no unique index on
// placeID. Known limitation, kept to match the system this one replaces.
func (r *AdRepo) Create(ctx context.Context, p *model.AdPayload) (CreateResult, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return CreateResult{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var locID uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM locations WHERE placeID = ? LIMIT 1", p.PlaceID).Scan(&locID)
	switch {
	case err == sql.ErrNoRows:
		res, ierr := tx.ExecContext(ctx,
			"INSERT INTO locations (placeID, primaryAddress, secondaryAddress) VALUES (?, ?, ?)",
			p.PlaceID, p.PrimaryAddress, p.SecondaryAddress)
		if ierr != nil {
			return CreateResult{}, fmt.Errorf("%w: %v", ErrLocationInsert, ierr)
		}
		id, ierr := res.LastInsertId()
		if ierr != nil {
			return CreateResult{}, fmt.Errorf("%w: %v", ErrLocationInsert, ierr)
		}
		locID = uint64(id)
	case err != nil:
		return CreateResult{}, fmt.Errorf("%w: %v", ErrLocationLookup, err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO ads (
			locationID, title, adType, propertyCategory,
			propertyCondition, propertyFloor, propertysize,
			buildDate, renovationDate, bedrooms, masterBedrooms,
			bathrooms, WC, energyClass, price, propertyZone,
			extraInfo, contactEmail, contactPhone,
			contactHoursFrom, contactHoursTo
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		locID, p.Title, p.AdType, p.PropertyCategory,
		p.PropertyCondition, p.PropertyFloor, p.PropertySize,
		p.BuildDate, p.RenovationDate, p.Bedrooms, p.MasterBedrooms,
		p.Bathrooms, p.WC, p.EnergyClass, p.Price, p.PropertyZone,
		p.ExtraInfo, p.ContactInfo.Email, p.ContactInfo.Phone,
		p.ContactInfo.ContactHoursFrom, p.ContactInfo.ContactHoursTo)
	if err != nil {
		return CreateResult{}, fmt.Errorf("%w: %v", ErrAdInsert, err)
	}
	adID, err := res.LastInsertId()
	if err != nil {
		return CreateResult{}, fmt.Errorf("%w: %v", ErrAdInsert, err)
	}

	var createdAt int64
	if err := tx.QueryRowContext(ctx,
		"SELECT created_at FROM ads WHERE id = ?", adID).Scan(&createdAt); err != nil {
		return CreateResult{}, fmt.Errorf("%w: %v", ErrTimestampRead, err)
	}

	if err := tx.Commit(); err != nil {
		return CreateResult{}, err
	}
	return CreateResult{AdID: uint64(adID), LocationID: locID, CreatedAt: createdAt}, nil
}

// ListAll returns every ad, newest first, each joined with its location.
// No pagination or filtering; the frontend renders the full list.
func (r *AdRepo) ListAll(ctx context.Context) ([]model.Ad, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT
			ads.id, ads.title, ads.adType, ads.propertyCategory,
			ads.propertyCondition, ads.propertyFloor, ads.propertysize,
			ads.buildDate, ads.renovationDate, ads.bedrooms, ads.masterBedrooms,
			ads.bathrooms, ads.WC, ads.energyClass, ads.price, ads.propertyZone,
			ads.extraInfo, ads.contactEmail, ads.contactPhone,
			ads.contactHoursFrom, ads.contactHoursTo, ads.created_at,
			ads.locationID, locations.placeID, locations.primaryAddress, locations.secondaryAddress
		FROM ads
		LEFT JOIN locations ON ads.locationID = locations.id
		ORDER BY ads.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ads := make([]model.Ad, 0)
	for rows.Next() {
		var a model.Ad
		var placeID, primaryAddr sql.NullString
		if err := rows.Scan(
			&a.ID, &a.Title, &a.AdType, &a.PropertyCategory,
			&a.PropertyCondition, &a.PropertyFloor, &a.PropertySize,
			&a.BuildDate, &a.RenovationDate, &a.Bedrooms, &a.MasterBedrooms,
			&a.Bathrooms, &a.WC, &a.EnergyClass, &a.Price, &a.PropertyZone,
			&a.ExtraInfo, &a.ContactEmail, &a.ContactPhone,
			&a.ContactHoursFrom, &a.ContactHoursTo, &a.CreatedAt,
			&a.Location.ID, &placeID, &primaryAddr, &a.Location.SecondaryAddress,
		); err != nil {
			return nil, err
		}
		a.Location.PlaceID = placeID.String
		a.Location.PrimaryAddress = primaryAddr.String
		ads = append(ads, a)
	}
	return ads, rows.Err()
}
