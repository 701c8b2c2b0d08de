package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"region-catalog-go/internal/catalog"
	"region-catalog-go/internal/handler"
	"region-catalog-go/internal/query"
	"region-catalog-go/pkg/config"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Build the region catalog. A load failure is fatal: serving traffic
	// against an empty or partial catalog would silently return wrong
	// answers to automated callers.
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.DatabaseURL != "" {
		db, dbErr := sqlx.Connect("postgres", cfg.DatabaseURL)
		if dbErr != nil {
			log.Fatalf("Failed to connect to database: %v", dbErr)
		}
		cat, err = catalog.LoadDB(db)
		// The catalog is fully in memory after loading; the database is
		// not consulted again.
		db.Close()
	} else {
		cat, err = catalog.LoadFile(cfg.RegionDataset)
	}
	if err != nil {
		log.Fatalf("Failed to load region catalog: %v", err)
	}
	log.Printf("Loaded %d regions", cat.Len())

	// Initialize services
	queryService := query.NewQueryService(cat)

	// Initialize handlers
	regionHandler := handler.NewRegionHandler(queryService)

	// Set up Gin router
	router := gin.Default()

	// Apply CORS middleware: the catalog is public read-only data consumed
	// by the static map UI and third-party automation.
	corsConfig := cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        86400, // 24 hours
	}
	router.Use(cors.New(corsConfig))

	// Routes
	router.GET("/healthz", regionHandler.Health)
	router.GET("/regions", regionHandler.List)
	router.GET("/regions/nearest", regionHandler.Nearest)
	router.GET("/regions/:id", regionHandler.Get)

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
