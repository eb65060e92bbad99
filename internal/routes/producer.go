package routes

import (
	"protomilk/internal/handlers"

	"github.com/gin-gonic/gin"
)

type ProducerRoutes struct {
	handler *handlers.ProducerHandler
}

func NewProducerRoutes(handler *handlers.ProducerHandler) *ProducerRoutes {
	return &ProducerRoutes{handler: handler}
}

func (r *ProducerRoutes) RegisterRoutes(router *gin.RouterGroup) {
	producers := router.Group("/producers")
	{
		producers.GET("", r.handler.ListProducers)
		producers.POST("", r.handler.CreateProducer)
		producers.GET("/:id", r.handler.GetProducer)
		producers.PUT("/:id", r.handler.UpdateProducer)
		producers.DELETE("/:id", r.handler.DeleteProducer)
	}
}
