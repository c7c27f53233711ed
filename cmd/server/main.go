package main

import (
	"log"
	"net/http"
	"os"

	"travel_desk/internal/config"
	"travel_desk/internal/logger"
	"travel_desk/internal/middleware"
	"travel_desk/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database and migrate the record stores
	config.InitDB()

	// Bootstrap admin account, idempotent
	if err := config.SeedAdmin(config.DB); err != nil {
		log.Fatalf("admin bootstrap failed: %v", err)
	}

	// Setup Gin router
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 Server running at :%s", port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, handler))
}
