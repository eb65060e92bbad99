package routes

import (
	"protomilk/internal/handlers"

	"github.com/gin-gonic/gin"
)

type TreatmentRoutes struct {
	handler *handlers.TreatmentHandler
}

func NewTreatmentRoutes(handler *handlers.TreatmentHandler) *TreatmentRoutes {
	return &TreatmentRoutes{handler: handler}
}

func (r *TreatmentRoutes) RegisterRoutes(router *gin.RouterGroup) {
	treatments := router.Group("/treatments")
	{
		treatments.GET("", r.handler.ListTreatments)
		treatments.POST("", r.handler.CreateTreatment)
		treatments.GET("/:id", r.handler.GetTreatment)
		treatments.DELETE("/:id", r.handler.DeleteTreatment)
	}
}
