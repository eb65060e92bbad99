package routes

import (
	"protomilk/internal/handlers"

	"github.com/gin-gonic/gin"
)

type AnimalRoutes struct {
	handler *handlers.AnimalHandler
}

func NewAnimalRoutes(handler *handlers.AnimalHandler) *AnimalRoutes {
	return &AnimalRoutes{handler: handler}
}

func (r *AnimalRoutes) RegisterRoutes(router *gin.RouterGroup) {
	animals := router.Group("/animals")
	{
		// GET is keyed by producer; PUT and DELETE by the animal itself
		animals.GET("/:producerId", r.handler.ListAnimals)
		animals.POST("", r.handler.CreateAnimal)
		animals.PUT("/:id", r.handler.UpdateAnimal)
		animals.DELETE("/:id", r.handler.DeleteAnimal)
	}
}
