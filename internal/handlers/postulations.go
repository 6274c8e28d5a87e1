package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/empleo-joven-api/internal/dto"
	apierrors "github.com/yukikurage/empleo-joven-api/internal/errors"
	"github.com/yukikurage/empleo-joven-api/internal/services"
)

type PostulationHandler struct {
	postulationService *services.PostulationService
}

func NewPostulationHandler(postulationService *services.PostulationService) *PostulationHandler {
	return &PostulationHandler{postulationService: postulationService}
}

// List returns the postulations visible to the caller's role.
func (h *PostulationHandler) List(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	postulations, err := h.postulationService.ListForCaller(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "Error al obtener postulaciones")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostulationListDTOs(identity.RoleID, postulations))
}

// Create applies the caller to an opportunity.
func (h *PostulationHandler) Create(c *gin.Context) {
	type CreatePostulationRequest struct {
		OpportunityID uint64  `json:"id_oportunidad" binding:"required"`
		Message       *string `json:"mensaje"`
	}

	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req CreatePostulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "id_oportunidad es obligatorio")
		return
	}

	postulation, err := h.postulationService.Apply(c.Request.Context(), identity, req.OpportunityID, req.Message)
	if err != nil {
		respondError(c, err, "Error al crear postulación")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostulationDTO(*postulation))
}

// UpdateStatus sets the postulation status to any value the reviewer sends.
func (h *PostulationHandler) UpdateStatus(c *gin.Context) {
	type UpdateStatusRequest struct {
		Status string `json:"estado" binding:"required"`
	}

	id, ok := parseIDParam(c, "id_postulacion")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "estado es obligatorio")
		return
	}

	postulation, err := h.postulationService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, "Error al actualizar postulación")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostulationDTO(*postulation))
}

func (h *PostulationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id_postulacion")
	if !ok {
		return
	}

	if err := h.postulationService.Withdraw(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error al eliminar postulación")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Postulación eliminada"})
}

// ListForOpportunity returns the applicants of one opportunity.
func (h *PostulationHandler) ListForOpportunity(c *gin.Context) {
	opportunityID, ok := parseIDParam(c, "id_oportunidad")
	if !ok {
		return
	}

	postulations, err := h.postulationService.ListForOpportunity(c.Request.Context(), opportunityID)
	if err != nil {
		respondError(c, err, "Error al obtener postulaciones para la oportunidad")
		return
	}

	c.JSON(http.StatusOK, dto.ToOpportunityPostulationDTOs(postulations))
}
