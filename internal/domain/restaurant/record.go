package restaurant

// sentinel the upstream scrape writes when a listing has no street address
const noAddress = "None"

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// OpenHours is one opening window. Day is 0-based (0 = Monday), Start and End
// are "HHMM" strings, matching the scraped source format.
type OpenHours struct {
	Day         int    `json:"day"`
	Start       string `json:"start"`
	End         string `json:"end"`
	IsOvernight bool   `json:"is_overnight"`
}

// Record is a restaurant document from the key-value store. Identity is ID;
// records are read-only to this service.
type Record struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Rating      float64     `json:"rating"`
	ReviewCount int         `json:"review_count"`
	Coordinates Coordinates `json:"coordinates"`
	Address     string      `json:"address"`
	Phone       string      `json:"phone"`
	ZipCode     string      `json:"zip_code"`
	Hours       []OpenHours `json:"hours,omitempty"`
}

// HasAddress reports whether the record carries a usable street address. Some
// scraped records have an empty or sentinel address and must not be suggested.
func (r Record) HasAddress() bool {
	return r.Address != "" && r.Address != noAddress
}
