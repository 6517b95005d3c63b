package main

import (
	"context"
	"log"
	"time"

	"repaired-site/internal/config"
	"repaired-site/internal/db"
	"repaired-site/internal/logos"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := db.Open(ctx, cfg.DatabaseURL, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close(context.Background())

	switch conn.Driver {
	case db.DriverNone:
		log.Fatal("seed: DATABASE_URL is not set")
	case db.DriverMemory:
		log.Fatal("seed: the memory store does not outlive this process, point DATABASE_URL at postgres or mongodb")
	}

	if err := conn.Migrate(ctx); err != nil {
		log.Fatalf("seed migrate: %v", err)
	}

	n, err := logos.Seed(ctx, logos.NewRepository(conn))
	if err != nil {
		log.Fatalf("seed logos: %v", err)
	}
	if n == 0 {
		log.Println("seed: company_logos already populated, nothing to do")
	} else {
		log.Printf("seed: inserted %d logos", n)
	}

	log.Println("seed completed")
}
