package entities

import (
	"time"

	"gorm.io/gorm"
)

// User is a registered account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FirstName string         `json:"firstname"`
	LastName  string         `json:"lastname"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Public returns the sanitized projection of the user: same identity and
// profile fields, empty password hash. Every user leaving the service goes
// through this.
func (u User) Public() User {
	u.Password = ""
	return u
}
