package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/cronjob"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/routes"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/referenceService"
	"github.com/miguelsot0b/primarios727-sistema-produccion/internal/services/snapshotService"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file loaded, using environment as-is")
	}

	referencePath := os.Getenv("reference_file_path")
	if referencePath == "" {
		referencePath = filepath.Join("data", "reference", "reference_data.csv")
	}

	store, err := referenceService.OpenStore(referencePath)
	if err != nil {
		log.Fatalf("Could not open reference store: %s\n", err)
	}

	cache := snapshotService.NewCache()
	refresher := &snapshotService.Refresher{Cache: cache}
	refresher.RefreshAll()

	cronjob.RegisterJob("snapshot-refresh", refresher.RefreshAll, "@every "+snapshotService.RefreshInterval().String())
	cronjob.Start()

	router := gin.Default()
	routes.RegisterRoutes(router, store, cache, refresher)

	port := os.Getenv("port")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on port: %s ,as time: %s\n", port, time.Now())
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Could not start server: %s\n", err)
	}
}
