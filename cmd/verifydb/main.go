package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"repaired-site/internal/config"
	"repaired-site/internal/db"
)

// verifydb checks that DATABASE_URL (or the first argument) is reachable.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	dsn := cfg.DatabaseURL
	if len(os.Args) > 1 {
		dsn = os.Args[1]
	}
	if strings.TrimSpace(dsn) == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is not set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	fmt.Println("connecting to database...")
	conn, err := db.Open(ctx, dsn, cfg.MongoDB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connection failed:", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	if err := conn.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "ping failed:", err)
		os.Exit(1)
	}

	version, names, err := conn.Describe(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "query failed:", err)
		os.Exit(1)
	}

	fmt.Printf("connected (%s)\n", conn.Driver)
	fmt.Println("server version:", version)
	if len(names) == 0 {
		fmt.Println("no tables found")
		return
	}
	fmt.Println("tables:")
	for _, n := range names {
		fmt.Println("  -", n)
	}
}
