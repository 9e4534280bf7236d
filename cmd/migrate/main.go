package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq"

	"github.com/brunocamarg0/trim-squire/internal/config"
	"github.com/brunocamarg0/trim-squire/internal/infra/storage/migrations"
	"github.com/brunocamarg0/trim-squire/pkg/logger"
)

// Использование:
//
//	migrate [-config config.toml] up
//	migrate [-config config.toml] down
//	migrate [-config config.toml] force <version>
//	migrate [-config config.toml] version
func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	migrator, err := migrations.New(db, log)
	if err != nil {
		log.Fatal("Failed to create migrator: %v", err)
	}
	defer migrator.Close()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Down()
	case "force":
		if flag.NArg() < 2 {
			log.Fatal("force requires a version argument")
		}
		version, convErr := strconv.Atoi(flag.Arg(1))
		if convErr != nil {
			log.Fatal("Invalid version %q: %v", flag.Arg(1), convErr)
		}
		err = migrator.Force(version)
	case "version":
		version, dirty, verErr := migrator.Version()
		if verErr != nil {
			log.Fatal("Failed to read version: %v", verErr)
		}
		log.Info("Schema version=%d dirty=%t", version, dirty)
	default:
		log.Fatal("Unknown command %q (expected up, down, force or version)", command)
	}

	if err != nil {
		log.Fatal("Migration failed: %v", err)
	}
}
