// models/destination.go
package models

// Destination categories shown in the catalog.
const (
	CategoryBeach    = "Beach"
	CategoryCity     = "City"
	CategoryMountain = "Mountain"
)

// Destination is a catalog record. Fields arrive from the admin client and
// are stored verbatim.
type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Includes    []string `json:"includes"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}
