package model

import "errors"

// Ad is a real-estate listing as returned by the listing endpoints. JSON
// names mirror the stored columns (the frontend consumes them directly),
// which is why they are camelCase and created_at is snake_case epoch
// seconds. Optional attributes are pointers so NULL survives the trip.
type Ad struct {
	ID                uint64   `json:"id"`
	Title             string   `json:"title"`
	AdType            string   `json:"adType"`
	PropertyCategory  string   `json:"propertyCategory"`
	PropertyCondition string   `json:"propertyCondition"`
	PropertyFloor     string   `json:"propertyFloor"`
	PropertySize      int      `json:"propertysize"`
	BuildDate         *int     `json:"buildDate"`
	RenovationDate    *int     `json:"renovationDate"`
	Bedrooms          *int     `json:"bedrooms"`
	MasterBedrooms    *int     `json:"masterBedrooms"`
	Bathrooms         *int     `json:"bathrooms"`
	WC                *int     `json:"WC"`
	EnergyClass       *string  `json:"energyClass"`
	Price             float64  `json:"price"`
	PropertyZone      string   `json:"propertyZone"`
	ExtraInfo         *string  `json:"extraInfo"`
	ContactEmail      string   `json:"contactEmail"`
	ContactPhone      string   `json:"contactPhone"`
	ContactHoursFrom  string   `json:"contactHoursFrom"`
	ContactHoursTo    string   `json:"contactHoursTo"`
	CreatedAt         int64    `json:"created_at"`
	Location          Location `json:"location"`
}

// ContactInfo groups the contact fields nested under "contactInfo" in the
// ad-creation payload.
type ContactInfo struct {
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	ContactHoursFrom string `json:"contactHoursFrom"`
	ContactHoursTo   string `json:"contactHoursTo"`
}

// AdPayload is the client-supplied body of saveAdInDB. It carries both the
// location the ad belongs to and the ad fields themselves; the store
// resolves PlaceID to an existing or new location row.
type AdPayload struct {
	PlaceID           string      `json:"placeID"`
	PrimaryAddress    string      `json:"primaryAddress"`
	SecondaryAddress  *string     `json:"secondaryAddress"`
	Title             string      `json:"title"`
	AdType            string      `json:"adType"`
	PropertyCategory  string      `json:"propertyCategory"`
	PropertyCondition string      `json:"propertyCondition"`
	PropertyFloor     string      `json:"propertyFloor"`
	PropertySize      int         `json:"propertysize"`
	BuildDate         *int        `json:"buildDate"`
	RenovationDate    *int        `json:"renovationDate"`
	Bedrooms          *int        `json:"bedrooms"`
	MasterBedrooms    *int        `json:"masterBedrooms"`
	Bathrooms         *int        `json:"bathrooms"`
	WC                *int        `json:"WC"`
	EnergyClass       *string     `json:"energyClass"`
	Price             float64     `json:"price"`
	PropertyZone      string      `json:"propertyZone"`
	ExtraInfo         *string     `json:"extraInfo"`
	ContactInfo       ContactInfo `json:"contactInfo"`
}

// Validate checks every required field before any transaction is opened,
// so a bad payload fails fast instead of surfacing as a store error
// halfway through the write.
func (p *AdPayload) Validate() error {
	required := []struct {
		name  string
		empty bool
	}{
		{"placeID", p.PlaceID == ""},
		{"primaryAddress", p.PrimaryAddress == ""},
		{"title", p.Title == ""},
		{"adType", p.AdType == ""},
		{"propertyCategory", p.PropertyCategory == ""},
		{"propertyCondition", p.PropertyCondition == ""},
		{"propertyFloor", p.PropertyFloor == ""},
		{"propertysize", p.PropertySize <= 0},
		{"price", p.Price <= 0},
		{"propertyZone", p.PropertyZone == ""},
		{"contactInfo.email", p.ContactInfo.Email == ""},
		{"contactInfo.phone", p.ContactInfo.Phone == ""},
		{"contactInfo.contactHoursFrom", p.ContactInfo.ContactHoursFrom == ""},
		{"contactInfo.contactHoursTo", p.ContactInfo.ContactHoursTo == ""},
	}
	for _, f := range required {
		if f.empty {
			return errors.New("missing or invalid field: " + f.name)
		}
	}
	return nil
}
