// Package queue defines message payloads exchanged over the message broker.
package queue

// AdCreatedEvent is published after an ad-creation transaction commits.
// It carries enough for downstream consumers (notifications, search
// indexing) to act without querying the listing store.
type AdCreatedEvent struct {
	AdID       uint64  `json:"ad_id"`
	LocationID uint64  `json:"location_id"`
	PlaceID    string  `json:"place_id"`
	Title      string  `json:"title"`
	AdType     string  `json:"ad_type"`
	Price      float64 `json:"price"`
	CreatedAt  int64   `json:"created_at"`
}
