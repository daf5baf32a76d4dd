package db

import (
	"fmt"
	"log"

	"hotel-server/entities"
)

// DefaultGuestSeed is the starter guest directory. It is read-only seed data
// passed explicitly into Seed; nothing in the service mutates it.
var DefaultGuestSeed = []entities.Guest{
	{FirstName: "Mark", LastName: "Solberg", PhoneNumber: "+1-571-177-5166", EmailAddress: "hedwig@live.com"},
	{FirstName: "Dmitri", LastName: "Terent", PhoneNumber: "+1-216-542-8272", EmailAddress: "pavel@gmail.com"},
	{FirstName: "Daniel", LastName: "Glebov", PhoneNumber: "+1-858-774-4605", EmailAddress: "campbell@outlook.com"},
	{FirstName: "Michael", LastName: "Vorhees", PhoneNumber: "+1-429-551-0362", EmailAddress: "haddawy@live.com"},
	{FirstName: "Anna", LastName: "Egorova", PhoneNumber: "+1-786-554-0245", EmailAddress: "jorgb@att.net"},
}

// Seed inserts the given guests when the guest table is empty. Idempotent
// across restarts: a non-empty table is left untouched.
func Seed(database Database, guests []entities.Guest) error {
	gdb := database.GetDB()

	var count int64
	if err := gdb.Model(&entities.Guest{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count guests: %w", err)
	}
	if count > 0 {
		return nil
	}
	if len(guests) == 0 {
		return nil
	}

	seed := make([]entities.Guest, len(guests))
	copy(seed, guests)
	if err := gdb.Create(&seed).Error; err != nil {
		return fmt.Errorf("failed to seed guests: %w", err)
	}
	log.Printf("Seeded %d guests", len(seed))
	return nil
}
