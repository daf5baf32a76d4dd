package entities

// Guest is a person staying under a booking. Guests are referenced by
// bookings, never owned: the same guest may appear in any number of them.
type Guest struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
	PhoneNumber  string `json:"phonenumber"`
	EmailAddress string `json:"emailaddress"`
}
