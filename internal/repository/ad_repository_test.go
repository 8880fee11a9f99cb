package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/iliyamo/estate-ads/internal/model"
)

func testPayload(placeID string) *model.AdPayload {
	second := "Attica"
	extra := "south facing"
	bedrooms := 2
	return &model.AdPayload{
		PlaceID:           placeID,
		PrimaryAddress:    "12 Ermou St, Athens",
		SecondaryAddress:  &second,
		Title:             "Bright 2-bedroom flat",
		AdType:            "sale",
		PropertyCategory:  "apartment",
		PropertyCondition: "renovated",
		PropertyFloor:     "3",
		PropertySize:      78,
		Bedrooms:          &bedrooms,
		Price:             215000.50,
		PropertyZone:      "residential",
		ExtraInfo:         &extra,
		ContactInfo: model.ContactInfo{
			Email:            "seller@example.com",
			Phone:            "+302101234567",
			ContactHoursFrom: "09:00",
			ContactHoursTo:   "18:00",
		},
	}
}

func TestCreateAdWithNewLocation(t *testing.T) {
	db := openListingDB(t)
	repo := NewAdRepo(db)

	res, err := repo.Create(context.Background(), testPayload("place-1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if res.AdID == 0 || res.LocationID == 0 {
		t.Fatalf("expected assigned ids, got %+v", res)
	}
	if got := countRows(t, db, "locations"); got != 1 {
		t.Fatalf("locations = %d, want 1", got)
	}
	if got := countRows(t, db, "ads"); got != 1 {
		t.Fatalf("ads = %d, want 1", got)
	}

	// returned timestamp must be the stored one, assigned by the store
	var stored int64
	if err := db.QueryRow("SELECT created_at FROM ads WHERE id = ?", res.AdID).Scan(&stored); err != nil {
		t.Fatalf("read created_at: %v", err)
	}
	if stored != res.CreatedAt {
		t.Fatalf("createdAt = %d, stored = %d", res.CreatedAt, stored)
	}
	now := time.Now().Unix()
	if res.CreatedAt < now-10 || res.CreatedAt > now+10 {
		t.Fatalf("createdAt %d not near now %d", res.CreatedAt, now)
	}
}

func TestCreateAdReusesLocationForSamePlaceID(t *testing.T) {
	db := openListingDB(t)
	repo := NewAdRepo(db)

	first, err := repo.Create(context.Background(), testPayload("place-dup"))
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := repo.Create(context.Background(), testPayload("place-dup"))
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if first.LocationID != second.LocationID {
		t.Fatalf("location ids differ: %d vs %d", first.LocationID, second.LocationID)
	}
	if got := countRows(t, db, "locations"); got != 1 {
		t.Fatalf("locations = %d, want 1 (no duplicate for same placeID)", got)
	}
	if got := countRows(t, db, "ads"); got != 2 {
		t.Fatalf("ads = %d, want 2", got)
	}
}

func TestCreateAdRollsBackNewLocationWhenAdInsertFails(t *testing.T) {
	db := openListingDB(t)
	repo := NewAdRepo(db)

	// sabotage the ad insert so only the location step can succeed
	if _, err := db.Exec("DROP TABLE ads"); err != nil {
		t.Fatalf("drop ads: %v", err)
	}

	_, err := repo.Create(context.Background(), testPayload("place-rollback"))
	if !errors.Is(err, ErrAdInsert) {
		t.Fatalf("err = %v, want ErrAdInsert", err)
	}
	// the freshly inserted location must not survive the rollback
	if got := countRows(t, db, "locations"); got != 0 {
		t.Fatalf("locations = %d, want 0 after rollback", got)
	}
}

func TestListAllNewestFirstWithLocation(t *testing.T) {
	db := openListingDB(t)
	repo := NewAdRepo(db)

	res, err := db.Exec(
		"INSERT INTO locations (placeID, primaryAddress, secondaryAddress) VALUES (?, ?, ?)",
		"place-list", "1 Main St", nil)
	if err != nil {
		t.Fatalf("insert location: %v", err)
	}
	locID, _ := res.LastInsertId()

	for i, ad := range []struct {
		title     string
		createdAt int64
	}{
		{"oldest", 1000},
		{"middle", 2000},
		{"newest", 3000},
	} {
		_, err := db.Exec(`INSERT INTO ads (
			locationID, title, adType, propertyCategory, propertyCondition,
			propertyFloor, propertysize, price, propertyZone,
			contactEmail, contactPhone, contactHoursFrom, contactHoursTo, created_at
		) VALUES (?, ?, 'sale', 'apartment', 'good', '1', 50, 100000, 'residential',
			'a@b.com', '123', '09:00', '17:00', ?)`,
			locID, ad.title, ad.createdAt)
		if err != nil {
			t.Fatalf("insert ad %d: %v", i, err)
		}
	}

	ads, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ads) != 3 {
		t.Fatalf("len = %d, want 3", len(ads))
	}
	want := []string{"newest", "middle", "oldest"}
	for i, w := range want {
		if ads[i].Title != w {
			t.Fatalf("ads[%d].Title = %q, want %q", i, ads[i].Title, w)
		}
	}
	for _, a := range ads {
		if a.Location.ID != uint64(locID) {
			t.Fatalf("location id = %d, want %d", a.Location.ID, locID)
		}
		if a.Location.PlaceID != "place-list" || a.Location.PrimaryAddress != "1 Main St" {
			t.Fatalf("location not joined: %+v", a.Location)
		}
	}
}

func TestDeleteLocationCascadesToAds(t *testing.T) {
	db := openListingDB(t)
	adRepo := NewAdRepo(db)
	locRepo := NewLocationRepo(db)

	first, err := adRepo.Create(context.Background(), testPayload("place-cascade"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := adRepo.Create(context.Background(), testPayload("place-cascade")); err != nil {
		t.Fatalf("create second: %v", err)
	}

	if err := locRepo.Delete(context.Background(), first.LocationID); err != nil {
		t.Fatalf("delete location: %v", err)
	}
	if got := countRows(t, db, "ads"); got != 0 {
		t.Fatalf("ads = %d, want 0 after cascade", got)
	}
	if got := countRows(t, db, "locations"); got != 0 {
		t.Fatalf("locations = %d, want 0", got)
	}
}

func TestGetByPlaceIDAbsent(t *testing.T) {
	db := openListingDB(t)
	repo := NewLocationRepo(db)

	if _, err := repo.GetByPlaceID(context.Background(), "never-seen"); err == nil {
		t.Fatal("expected error for unknown placeID")
	}
}
