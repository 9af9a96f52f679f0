package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// MERCHANTS
	// -------------------------------
	merchantsSQL := `
		CREATE TABLE IF NOT EXISTS merchants (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, merchantsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CARTS
	// -------------------------------
	cartsSQL := `
		CREATE TABLE IF NOT EXISTS carts (
			id UUID PRIMARY KEY,
			contents JSONB NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, cartsSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			cart_id UUID NOT NULL,
			payload JSONB NOT NULL,
			client_secret VARCHAR(500) NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			currency VARCHAR(10) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTAURANT SETTINGS (SINGLE ROW)
	// -------------------------------
	settingsSQL := `
		CREATE TABLE IF NOT EXISTS restaurant_settings (
			id INT PRIMARY KEY,
			accepting_orders BOOLEAN NOT NULL DEFAULT TRUE,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_by UUID NULL
		);

		INSERT INTO restaurant_settings (id, accepting_orders)
		VALUES (1, TRUE)
		ON CONFLICT (id) DO NOTHING;
	`
	if _, err := pool.Exec(ctx, settingsSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
