package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/empleo-joven-api/internal/dto"
	apierrors "github.com/yukikurage/empleo-joven-api/internal/errors"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/services"
)

type ExperienceHandler struct {
	experienceService *services.ExperienceService
}

func NewExperienceHandler(experienceService *services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	experiences, err := h.experienceService.ListForCaller(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "Error al obtener experiencias")
		return
	}

	c.JSON(http.StatusOK, dto.ToExperienceListDTOs(identity.RoleID, experiences))
}

// Create records an experience for an accepted applicant.
func (h *ExperienceHandler) Create(c *gin.Context) {
	type CreateExperienceRequest struct {
		UserID        uint64       `json:"id_usuario" binding:"required"`
		OpportunityID uint64       `json:"id_oportunidad" binding:"required"`
		Description   string       `json:"descripcion"`
		StartDate     *models.Date `json:"fecha_inicio"`
		EndDate       *models.Date `json:"fecha_fin"`
		FinalComment  *string      `json:"comentario_final"`
	}

	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "id_usuario e id_oportunidad son obligatorios")
		return
	}

	experience, err := h.experienceService.CreateExperience(c.Request.Context(), identity, services.CreateExperienceInput{
		UserID:        req.UserID,
		OpportunityID: req.OpportunityID,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		FinalComment:  req.FinalComment,
	})
	if err != nil {
		respondError(c, err, "Error al registrar experiencia")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExperienceDTO(*experience))
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id_experiencia")
	if !ok {
		return
	}

	if err := h.experienceService.DeleteExperience(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error al eliminar experiencia")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Experiencia eliminada"})
}

// Candidates lists applicants accepted for the opportunity in the path.
func (h *ExperienceHandler) Candidates(c *gin.Context) {
	opportunityID, ok := parseIDParam(c, "id_oportunidad")
	if !ok {
		return
	}

	users, err := h.experienceService.AcceptedCandidates(c.Request.Context(), opportunityID)
	if err != nil {
		respondError(c, err, "Error al obtener candidatos")
		return
	}

	c.JSON(http.StatusOK, dto.ToCandidateDTOs(users))
}
