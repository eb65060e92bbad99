package routes

import (
	"net/http"

	"protomilk/internal/handlers"

	"github.com/gin-gonic/gin"
)

const rootMessage = "API do Proto Milk está funcionando!"

type Handlers struct {
	Producer   *handlers.ProducerHandler
	Animal     *handlers.AnimalHandler
	Medication *handlers.MedicationHandler
	Treatment  *handlers.TreatmentHandler
}

func RegisterRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/")

	NewProducerRoutes(h.Producer).RegisterRoutes(api)
	NewAnimalRoutes(h.Animal).RegisterRoutes(api)
	NewMedicationRoutes(h.Medication).RegisterRoutes(api)
	NewTreatmentRoutes(h.Treatment).RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, rootMessage)
	})
}
