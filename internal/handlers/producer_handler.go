package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"protomilk/internal/responses"
	"protomilk/internal/services"
)

type ProducerHandler struct {
	producerService *services.ProducerService
}

func NewProducerHandler(producerService *services.ProducerService) *ProducerHandler {
	return &ProducerHandler{producerService: producerService}
}

// ListProducers handles GET /producers
func (h *ProducerHandler) ListProducers(c *gin.Context) {
	producers, err := h.producerService.ListProducers(c.Request.Context())
	if err != nil {
		failStore(c, err, "producer")
		return
	}
	responses.JSON(c, http.StatusOK, producers)
}

// GetProducer handles GET /producers/:id
func (h *ProducerHandler) GetProducer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	producer, err := h.producerService.GetProducer(c.Request.Context(), id)
	if err != nil {
		failStore(c, err, "producer")
		return
	}
	responses.JSON(c, http.StatusOK, producer)
}

// CreateProducer handles POST /producers
func (h *ProducerHandler) CreateProducer(c *gin.Context) {
	var req services.ProducerRequest
	if !bindJSON(c, &req) {
		return
	}
	producer, err := h.producerService.CreateProducer(c.Request.Context(), req)
	if err != nil {
		failStore(c, err, "producer")
		return
	}
	responses.JSON(c, http.StatusCreated, producer)
}

// UpdateProducer handles PUT /producers/:id
func (h *ProducerHandler) UpdateProducer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req services.ProducerRequest
	if !bindJSON(c, &req) {
		return
	}
	producer, err := h.producerService.UpdateProducer(c.Request.Context(), id, req)
	if err != nil {
		failStore(c, err, "producer")
		return
	}
	responses.JSON(c, http.StatusOK, producer)
}

// DeleteProducer handles DELETE /producers/:id
func (h *ProducerHandler) DeleteProducer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.producerService.DeleteProducer(c.Request.Context(), id); err != nil {
		failStore(c, err, "producer")
		return
	}
	responses.NoContent(c)
}
