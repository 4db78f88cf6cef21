package main

import (
	"log"

	"github.com/capedev/shopcatalog-golang/internal/database"
	"github.com/capedev/shopcatalog-golang/internal/handlers"
	"github.com/capedev/shopcatalog-golang/internal/routes"
	"github.com/capedev/shopcatalog-golang/internal/seed"
	"github.com/capedev/shopcatalog-golang/internal/store"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	db, err := database.OpenDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to create database schema: %v", err)
	}

	categories := &store.CategoryStore{DB: db}
	products := &store.ProductStore{DB: db}

	// Seed before the router starts accepting traffic.
	if err := seed.Load(categories, products); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	app := &handlers.Handlers{
		Products:   products,
		Categories: categories,
		Dashboard:  &store.DashboardService{Products: products, Categories: categories},
	}

	router := routes.SetupRouter(app)

	log.Println("Starting catalog API server on port 8080...")
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
