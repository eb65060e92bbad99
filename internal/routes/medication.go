package routes

import (
	"protomilk/internal/handlers"

	"github.com/gin-gonic/gin"
)

type MedicationRoutes struct {
	handler *handlers.MedicationHandler
}

func NewMedicationRoutes(handler *handlers.MedicationHandler) *MedicationRoutes {
	return &MedicationRoutes{handler: handler}
}

func (r *MedicationRoutes) RegisterRoutes(router *gin.RouterGroup) {
	medications := router.Group("/medications")
	{
		medications.GET("", r.handler.ListMedications)
		medications.POST("", r.handler.CreateMedication)
		medications.GET("/:id", r.handler.GetMedication)
		medications.PUT("/:id", r.handler.UpdateMedication)
		medications.DELETE("/:id", r.handler.DeleteMedication)
	}
}
