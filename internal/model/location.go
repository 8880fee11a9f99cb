package model

// Location is one geocoded place. PlaceID is the stable identifier handed
// out by the external suggestion provider and acts as the dedup key: ads
// for the same real-world place share one location row.
type Location struct {
	ID               uint64  `json:"id"`
	PlaceID          string  `json:"placeID"`
	PrimaryAddress   string  `json:"primaryAddress"`
	SecondaryAddress *string `json:"secondaryAddress"`
}
