package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/empleo-joven-api/internal/dto"
	apierrors "github.com/yukikurage/empleo-joven-api/internal/errors"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/repository"
	"github.com/yukikurage/empleo-joven-api/internal/services"
	"github.com/yukikurage/empleo-joven-api/internal/utils"
)

type OpportunityHandler struct {
	opportunityService *services.OpportunityService
}

func NewOpportunityHandler(opportunityService *services.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{opportunityService: opportunityService}
}

type opportunityRequest struct {
	Title       string       `json:"titulo"`
	Description string       `json:"descripcion"`
	Location    string       `json:"ubicacion"`
	CategoryID  *uint64      `json:"tipo_categoria"`
	StartDate   *models.Date `json:"fecha_inicio"`
	EndDate     *models.Date `json:"fecha_fin"`
}

func (r opportunityRequest) fields() repository.OpportunityFields {
	return repository.OpportunityFields{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		CategoryID:  r.CategoryID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
}

// List returns published opportunities, newest first.
// Can filter by categoria
func (h *OpportunityHandler) List(c *gin.Context) {
	filter := repository.OpportunityFilter{Page: utils.GetPaginationParams(c)}

	if raw := strings.TrimSpace(c.Query("categoria")); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Categoría inválida")
			return
		}
		filter.CategoryID = &categoryID
	}

	h.respondList(c, filter, "Error del servidor")
}

// ListMine returns the caller's own opportunities.
func (h *OpportunityHandler) ListMine(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	filter := repository.OpportunityFilter{
		PostedBy: &identity.UserID,
		Page:     utils.GetPaginationParams(c),
	}
	h.respondList(c, filter, "Error al obtener oportunidades propias")
}

func (h *OpportunityHandler) respondList(c *gin.Context, filter repository.OpportunityFilter, failure string) {
	opportunities, total, err := h.opportunityService.ListOpportunities(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, failure)
		return
	}

	utils.SetTotalCount(c, total)
	c.JSON(http.StatusOK, dto.ToOpportunityDTOs(opportunities))
}

func (h *OpportunityHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id_oportunidad")
	if !ok {
		return
	}

	opportunity, err := h.opportunityService.GetOpportunity(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Error al obtener oportunidad")
		return
	}

	c.JSON(http.StatusOK, dto.ToOpportunityDTO(*opportunity))
}

// Create publishes an opportunity owned by the caller.
func (h *OpportunityHandler) Create(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req opportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Cuerpo de la solicitud inválido")
		return
	}

	opportunity, err := h.opportunityService.CreateOpportunity(c.Request.Context(), identity, req.fields())
	if err != nil {
		respondError(c, err, "Error al crear oportunidad")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOpportunityDTO(*opportunity))
}

// Update overwrites an opportunity. Existence and ownership are checked by
// RequireOwnership before this runs.
func (h *OpportunityHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id_oportunidad")
	if !ok {
		return
	}

	var req opportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Cuerpo de la solicitud inválido")
		return
	}

	opportunity, err := h.opportunityService.UpdateOpportunity(c.Request.Context(), id, req.fields())
	if err != nil {
		respondError(c, err, "Error al actualizar oportunidad")
		return
	}

	c.JSON(http.StatusOK, dto.ToOpportunityDTO(*opportunity))
}

func (h *OpportunityHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id_oportunidad")
	if !ok {
		return
	}

	if err := h.opportunityService.DeleteOpportunity(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error al eliminar oportunidad")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Oportunidad eliminada correctamente"})
}
