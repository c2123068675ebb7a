package main

import (
	"flag"
	"log"

	"quizforge/internal/config"
	"quizforge/internal/database"
)

func main() {
	var (
		dir  = flag.String("dir", "database/migrations", "path to the migrations directory")
		down = flag.Bool("down", false, "roll back the most recent migration instead of applying")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *down {
		if err := database.RollbackMigration(cfg.GetDSN(), *dir); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		log.Println("Rolled back one migration")
		return
	}

	if err := database.RunMigrations(cfg.GetDSN(), *dir); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully")
}
