package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"protomilk/internal/responses"
	"protomilk/internal/services"
	"protomilk/internal/utils"
)

type TreatmentHandler struct {
	treatmentService *services.TreatmentService
}

func NewTreatmentHandler(treatmentService *services.TreatmentService) *TreatmentHandler {
	return &TreatmentHandler{treatmentService: treatmentService}
}

// ListTreatments handles GET /treatments, optionally filtered by ?animal_id=
func (h *TreatmentHandler) ListTreatments(c *gin.Context) {
	var animalID *int64
	if raw, ok := c.GetQuery("animal_id"); ok {
		id, err := utils.ParseID(raw)
		if err != nil {
			responses.Fail(c, http.StatusBadRequest, nil, "animal_id: "+err.Error())
			return
		}
		animalID = &id
	}

	treatments, err := h.treatmentService.ListTreatments(c.Request.Context(), animalID)
	if err != nil {
		failStore(c, err, "treatment")
		return
	}
	responses.JSON(c, http.StatusOK, treatments)
}

// GetTreatment handles GET /treatments/:id
func (h *TreatmentHandler) GetTreatment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	treatment, err := h.treatmentService.GetTreatment(c.Request.Context(), id)
	if err != nil {
		failStore(c, err, "treatment")
		return
	}
	responses.JSON(c, http.StatusOK, treatment)
}

// CreateTreatment handles POST /treatments
func (h *TreatmentHandler) CreateTreatment(c *gin.Context) {
	var req services.TreatmentRequest
	if !bindJSON(c, &req) {
		return
	}
	treatment, err := h.treatmentService.CreateTreatment(c.Request.Context(), req)
	if err != nil {
		failStore(c, err, "treatment")
		return
	}
	responses.JSON(c, http.StatusCreated, treatment)
}

// DeleteTreatment handles DELETE /treatments/:id
func (h *TreatmentHandler) DeleteTreatment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.treatmentService.DeleteTreatment(c.Request.Context(), id); err != nil {
		failStore(c, err, "treatment")
		return
	}
	responses.NoContent(c)
}
