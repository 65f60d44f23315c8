package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"feedboard/app/routes"
	"feedboard/app/seed"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

const cliVersion = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("feedboard version %s\n", cliVersion)
	case "serve":
		runServe()
	case "seed":
		runSeed()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: feedboard <command>
Commands:
  help      Display this help message.
  version   Show version information.
  serve     Run the feed API server (PORT, FEEDBOARD_DB_PATH env vars).
  seed      Fill the database with demo users, posts, comments and likes.
`
	fmt.Println(helpText)
}

func openDB() *badger.DB {
	path := os.Getenv("FEEDBOARD_DB_PATH")
	if path == "" {
		path = "data/badger"
	}
	db, err := badger.Open(badger.DefaultOptions(path))
	if err != nil {
		log.Fatalf("Failed to open Badger DB: %v", err)
	}
	return db
}

func runServe() {
	db := openDB()
	defer db.Close()

	router := routes.SetupRoutes(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("feedboard server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runSeed() {
	db := openDB()
	defer db.Close()

	if err := seed.Run(db); err != nil {
		log.Fatalf("seed error: %v", err)
	}
	log.Println("seeding completed")
}
