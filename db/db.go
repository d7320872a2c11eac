package db

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// InitDatabase connects to PostgreSQL using the .env settings, creates
// the tables when they do not exist yet and seeds a first patient into
// an empty database.
func InitDatabase() (*Store, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, using environment as is")
	}
	host := os.Getenv("DATABASE_HOST")
	port := os.Getenv("DATABASE_PORT")
	user := os.Getenv("DATABASE_USER")
	password := os.Getenv("DATABASE_PASSWORD")
	databaseName := os.Getenv("DATABASE_NAME")

	config, err := pgxpool.ParseConfig(" host=" + host + " port=" + port + " user=" + user + " password=" + password + " database=" + databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}

	pool, err := pgxpool.ConnectConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Create tables
	sqlQueries := []string{
		`CREATE TABLE IF NOT EXISTS patients (
			id SERIAL PRIMARY KEY,
			first_name VARCHAR(50) NOT NULL,
			last_name VARCHAR(50) NOT NULL,
			date_of_birth DATE NOT NULL,
			gender VARCHAR(10),
			phone_number VARCHAR(20),
			email VARCHAR(100),
			address TEXT,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE
		)`,

		`CREATE TABLE IF NOT EXISTS appointments (
			id SERIAL PRIMARY KEY,
			patient_id INTEGER NOT NULL REFERENCES patients(id) ON DELETE CASCADE,
			appointment_date TIMESTAMP WITH TIME ZONE NOT NULL,
			description TEXT,
			status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE
		)`,
	}

	for _, query := range sqlQueries {
		_, err = pool.Exec(context.Background(), query)
		if err != nil {
			return nil, fmt.Errorf("failed to create table: %v", err)
		}
	}

	store := NewStore(pool)
	if err := store.seed(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to seed database: %v", err)
	}
	return store, nil
}

// seed inserts a test patient when the table is empty so a fresh
// install has something to list.
func (s *Store) seed(ctx context.Context) error {
	var count int
	if err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM patients").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Info().Msg("database already contains patients, skipping seed")
		return nil
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO patients (first_name, last_name, date_of_birth, gender, phone_number, email, address)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		"Test", "Patient", "1990-01-01", "Other", "+254712345678", "test@example.com", "123 Test St, Nairobi, Kenya")
	if err != nil {
		return err
	}
	log.Info().Msg("seeded test patient")
	return nil
}
