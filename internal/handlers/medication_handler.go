package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"protomilk/internal/responses"
	"protomilk/internal/services"
)

type MedicationHandler struct {
	medicationService *services.MedicationService
}

func NewMedicationHandler(medicationService *services.MedicationService) *MedicationHandler {
	return &MedicationHandler{medicationService: medicationService}
}

// ListMedications handles GET /medications
func (h *MedicationHandler) ListMedications(c *gin.Context) {
	medications, err := h.medicationService.ListMedications(c.Request.Context())
	if err != nil {
		failStore(c, err, "medication")
		return
	}
	responses.JSON(c, http.StatusOK, medications)
}

// GetMedication handles GET /medications/:id
func (h *MedicationHandler) GetMedication(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	medication, err := h.medicationService.GetMedication(c.Request.Context(), id)
	if err != nil {
		failStore(c, err, "medication")
		return
	}
	responses.JSON(c, http.StatusOK, medication)
}

// CreateMedication handles POST /medications
func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	var req services.MedicationRequest
	if !bindJSON(c, &req) {
		return
	}
	medication, err := h.medicationService.CreateMedication(c.Request.Context(), req)
	if err != nil {
		failStore(c, err, "medication")
		return
	}
	responses.JSON(c, http.StatusCreated, medication)
}

// UpdateMedication handles PUT /medications/:id
func (h *MedicationHandler) UpdateMedication(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req services.MedicationRequest
	if !bindJSON(c, &req) {
		return
	}
	medication, err := h.medicationService.UpdateMedication(c.Request.Context(), id, req)
	if err != nil {
		failStore(c, err, "medication")
		return
	}
	responses.JSON(c, http.StatusOK, medication)
}

// DeleteMedication handles DELETE /medications/:id
func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.medicationService.DeleteMedication(c.Request.Context(), id); err != nil {
		failStore(c, err, "medication")
		return
	}
	responses.NoContent(c)
}
