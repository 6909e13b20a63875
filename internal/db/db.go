package db

import (
	"errors"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // The database driver
)

// ErrNotFound is returned when a query matches no rows.
var ErrNotFound = errors.New("not found")

// Store holds the database connection. Handlers and workers consume it
// through their own interfaces so tests can substitute mocks.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Connect opens the connection described by DATABASE_URL.
func Connect() *Store {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	conn, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")
	return NewStore(conn)
}
