package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/estate-ads/internal/model"
)

// LocationRepo reads and administers location rows. Creation happens only
// inside AdRepo.Create, as part of the ad transaction.
type LocationRepo struct{ DB *sql.DB }

func NewLocationRepo(db *sql.DB) *LocationRepo { return &LocationRepo{DB: db} }

// GetByPlaceID returns the location for an external place identifier.
// sql.ErrNoRows means the place has never been seen.
func (r *LocationRepo) GetByPlaceID(ctx context.Context, placeID string) (model.Location, error) {
	var loc model.Location
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, placeID, primaryAddress, secondaryAddress FROM locations WHERE placeID = ? LIMIT 1",
		placeID).Scan(&loc.ID, &loc.PlaceID, &loc.PrimaryAddress, &loc.SecondaryAddress)
	return loc, err
}

// Delete removes a location row. The foreign key cascades, so every ad
// referencing the location is deleted with it. Administrative only; there
// is no HTTP endpoint for this.
func (r *LocationRepo) Delete(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM locations WHERE id = ?", id)
	return err
}
