// Command seed populates the development database with demo data.
package main

import (
	"flag"
	"log"

	"hoahub/internal/config"
	"hoahub/internal/database"
	"hoahub/internal/seed"
)

func main() {
	extraUsers := flag.Int("extra-users", 0, "number of random users to add on top of the demo set")
	extraGroups := flag.Int("extra-groups", 0, "number of random HOA groups to add on top of the demo set")
	clean := flag.Bool("clean", false, "delete existing data before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		ExtraUsers:  *extraUsers,
		ExtraGroups: *extraGroups,
		ShouldClean: *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
