package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"kikao-backend/pkg/utils"
)

// Applies the SQL files under migrations/ against the configured database.
func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}

	m, err := migrate.New("file://"+migrationsPath, databaseURL(config.Database))
	if err != nil {
		log.Fatalf("migration init failed: %v", err)
	}
	defer m.Close()

	switch command := args[0]; command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("up failed: %v", err)
		}
		log.Println("migrations: up completed")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				log.Fatalf("down: invalid steps argument %q", args[1])
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("down failed: %v", err)
		}
		log.Printf("migrations: down completed (%d steps)", steps)

	case "version":
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Fatalf("version failed: %v", err)
		}
		fmt.Printf("version: %d  dirty: %v\n", v, dirty)

	case "force":
		if len(args) < 2 {
			log.Fatal("force: version argument required")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("force: invalid version %q", args[1])
		}
		if err := m.Force(v); err != nil {
			log.Fatalf("force failed: %v", err)
		}
		log.Printf("migrations: forced to version %d", v)

	default:
		usage()
		os.Exit(1)
	}
}

func databaseURL(cfg utils.DatabaseConfig) string {
	return fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(cfg.User),
		url.QueryEscape(cfg.Password),
		cfg.Host,
		cfg.Port,
		cfg.Name,
	)
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate <command> [args]

Commands:
  up           Apply all pending migrations
  down [N]     Rollback N migrations (default: 1)
  version      Print current migration version
  force <V>    Force set migration version (bypass dirty state)

Environment:
  MIGRATIONS_PATH   Path to migrations directory (default: ./migrations)
  Database settings come from the same .env the server reads.`)
}
