package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/hamza-kay/smashbros/internal/auth"
	"github.com/hamza-kay/smashbros/internal/bundle"
	"github.com/hamza-kay/smashbros/internal/cart"
	"github.com/hamza-kay/smashbros/internal/checkout"
	"github.com/hamza-kay/smashbros/internal/db"
	"github.com/hamza-kay/smashbros/internal/menu"
	"github.com/hamza-kay/smashbros/internal/payment"
	"github.com/hamza-kay/smashbros/internal/restaurant"
	"github.com/hamza-kay/smashbros/internal/router"
	"github.com/hamza-kay/smashbros/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"UPSTREAM_API_BASE_URL",
		"UPSTREAM_API_TOKEN",
		"UPSTREAM_APP_ID",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	imageStore, err := storage.NewImageStore(context.Background())
	if err != nil {
		log.Fatal("image store init failed:", err)
	}

	// ───────────────────────── UPSTREAM CLIENTS ─────────────────────────
	baseURL := os.Getenv("UPSTREAM_API_BASE_URL")
	token := os.Getenv("UPSTREAM_API_TOKEN")
	appID := os.Getenv("UPSTREAM_APP_ID")

	menuSource := menu.NewHTTPSource(baseURL, token, appID)
	paymentClient := payment.NewClient(baseURL, token, appID)

	// ───────────────────────── SERVICES ─────────────────────────
	merchantRepo := auth.NewPostgresMerchantRepository(pgDB)
	authService := auth.NewService(merchantRepo)

	menuService := menu.NewService(menuSource, imageStore)

	cartStore := cart.NewPostgresStore(pgDB)
	cartService := cart.NewService(cartStore)

	orderRepo := checkout.NewPostgresOrderRepository(pgDB)
	checkoutService := checkout.NewService(paymentClient, orderRepo)

	restaurantRepo := restaurant.NewPostgresRepository(pgDB)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(router.Deps{
		Auth:       auth.NewHandler(authService),
		Menu:       menu.NewHandler(menuService),
		Cart:       cart.NewHandler(cartService, menuService),
		Bundle:     bundle.NewHandler(cartService, menuService),
		Checkout:   checkout.NewHandler(cartService, checkoutService),
		Restaurant: restaurant.NewHandler(restaurantRepo),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server running on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
