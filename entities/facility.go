package entities

// Facility is an extra service attachable to a booking (spa, parking, ...).
type Facility struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"price_per_day"`
}
