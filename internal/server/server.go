package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"protomilk/internal/config"
	"protomilk/internal/database"
	"protomilk/internal/handlers"
	"protomilk/internal/middlewares"
	"protomilk/internal/repositories"
	"protomilk/internal/routes"
	"protomilk/internal/services"
)

type Server struct {
	HTTP *http.Server
	pool *pgxpool.Pool
}

func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := database.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}

	router := NewRouter(pool)

	return &Server{
		HTTP: &http.Server{
			Addr:        cfg.Addr(),
			Handler:     router,
			IdleTimeout: time.Minute,
			ReadTimeout: 10 * time.Second,
		},
		pool: pool,
	}, nil
}

// NewRouter wires repositories, services and handlers over db.
func NewRouter(db database.DB) *gin.Engine {
	producerService := services.NewProducerService(repositories.NewProducerRepository(db))
	animalService := services.NewAnimalService(repositories.NewAnimalRepository(db))
	medicationService := services.NewMedicationService(repositories.NewMedicationRepository(db))
	treatmentService := services.NewTreatmentService(repositories.NewTreatmentRepository(db))

	router := gin.Default()
	router.Use(middlewares.AssignRequestID, middlewares.CORS())

	routes.RegisterRoutes(router, routes.Handlers{
		Producer:   handlers.NewProducerHandler(producerService),
		Animal:     handlers.NewAnimalHandler(animalService),
		Medication: handlers.NewMedicationHandler(medicationService),
		Treatment:  handlers.NewTreatmentHandler(treatmentService),
	})

	return router
}

func (s *Server) ListenAndServe() error {
	return s.HTTP.ListenAndServe()
}

// Shutdown drains in-flight requests, then closes the pool.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.HTTP.Shutdown(ctx)
	database.Close(s.pool)
	if err != nil {
		log.Println("Server Shutdown:", err)
	}
	return err
}
