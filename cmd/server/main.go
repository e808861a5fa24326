package main

import (
	"log"
	"net/http"

	"ma3_reports/internal/config"
	"ma3_reports/internal/docstore"
	"ma3_reports/internal/logger"
	"ma3_reports/internal/middleware"
	"ma3_reports/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database and build the document store
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	store := docstore.NewGormStore(db)

	// Setup Gin router with the injected store
	r := routes.SetupRouter(store)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := config.HTTPAddr()
	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
