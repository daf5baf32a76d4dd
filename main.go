package main

import (
	"log"

	"hotel-server/confs"
	"hotel-server/db"
	"hotel-server/server"
)

func main() {
	// load config
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// seed the guest directory on first start
	if err := db.Seed(database, db.DefaultGuestSeed); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// run server
	srv := server.NewServer(database)
	srv.Start()
}
