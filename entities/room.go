package entities

// Room is a bookable hotel room.
type Room struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Number        string  `gorm:"uniqueIndex" json:"number"`
	Type          string  `json:"type"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"price_per_night"`
}
