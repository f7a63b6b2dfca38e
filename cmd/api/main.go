package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/config"
	dbpkg "github.com/glowdesk/salon-scheduler/internal/db"
	infraRepo "github.com/glowdesk/salon-scheduler/internal/infra/repository"
	"github.com/glowdesk/salon-scheduler/internal/refdata"
	"github.com/glowdesk/salon-scheduler/internal/routes"
	"github.com/glowdesk/salon-scheduler/internal/store"
	"github.com/glowdesk/salon-scheduler/internal/store/memory"
	"github.com/glowdesk/salon-scheduler/internal/weather"
)

func main() {

	cfg := config.Load()

	var repo store.Repository
	var sink audit.Sink

	if cfg.DatabaseURL != "" {
		db := dbpkg.NewDB(cfg)
		repo = infraRepo.NewAppointmentGormRepository(db)
		sink = audit.NewDBSink(db)
	} else {
		log.Println("no DATABASE_URL configured, using in-memory store")
		repo = memory.New()
		sink = audit.LogSink{}
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		Repo:    repo,
		Catalog: refdata.Default(),
		Audit:   audit.NewDispatcher(sink),
		Weather: weather.NewClient(cfg.WeatherAPIKey),
	})

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
