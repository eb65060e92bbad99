package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"protomilk/internal/responses"
	"protomilk/internal/services"
)

type AnimalHandler struct {
	animalService *services.AnimalService
}

func NewAnimalHandler(animalService *services.AnimalService) *AnimalHandler {
	return &AnimalHandler{animalService: animalService}
}

// ListAnimals handles GET /animals/:producerId
func (h *AnimalHandler) ListAnimals(c *gin.Context) {
	producerID, ok := parseID(c, "producerId")
	if !ok {
		return
	}
	animals, err := h.animalService.ListAnimals(c.Request.Context(), producerID)
	if err != nil {
		failStore(c, err, "animal")
		return
	}
	responses.JSON(c, http.StatusOK, animals)
}

// CreateAnimal handles POST /animals
func (h *AnimalHandler) CreateAnimal(c *gin.Context) {
	var req services.AnimalRequest
	if !bindJSON(c, &req) {
		return
	}
	animal, err := h.animalService.CreateAnimal(c.Request.Context(), req)
	if err != nil {
		failStore(c, err, "animal")
		return
	}
	responses.JSON(c, http.StatusCreated, animal)
}

// UpdateAnimal handles PUT /animals/:id
func (h *AnimalHandler) UpdateAnimal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req services.AnimalRequest
	if !bindJSON(c, &req) {
		return
	}
	animal, err := h.animalService.UpdateAnimal(c.Request.Context(), id, req)
	if err != nil {
		failStore(c, err, "animal")
		return
	}
	responses.JSON(c, http.StatusOK, animal)
}

// DeleteAnimal handles DELETE /animals/:id
func (h *AnimalHandler) DeleteAnimal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.animalService.DeleteAnimal(c.Request.Context(), id); err != nil {
		failStore(c, err, "animal")
		return
	}
	responses.NoContent(c)
}
