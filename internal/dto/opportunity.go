package dto

import (
	"time"

	"github.com/yukikurage/empleo-joven-api/internal/models"
)

// OpportunityDTO represents an opportunity with its category name
type OpportunityDTO struct {
	ID           uint64       `json:"id_oportunidad"`
	Title        string       `json:"titulo"`
	Description  string       `json:"descripcion"`
	Location     string       `json:"ubicacion"`
	CategoryID   *uint64      `json:"tipo_categoria"`
	CategoryName *string      `json:"nombre_categoria"`
	StartDate    *models.Date `json:"fecha_inicio"`
	EndDate      *models.Date `json:"fecha_fin"`
	PostedBy     uint64       `json:"publicada_por"`
	PublishedAt  time.Time    `json:"fecha_publicacion"`
}

// ToOpportunityDTO converts an Opportunity model to OpportunityDTO
func ToOpportunityDTO(opportunity models.Opportunity) OpportunityDTO {
	dto := OpportunityDTO{
		ID:          opportunity.ID,
		Title:       opportunity.Title,
		Description: opportunity.Description,
		Location:    opportunity.Location,
		CategoryID:  opportunity.CategoryID,
		StartDate:   opportunity.StartDate,
		EndDate:     opportunity.EndDate,
		PostedBy:    opportunity.PostedBy,
		PublishedAt: opportunity.PublishedAt,
	}

	// Include category name if preloaded
	if opportunity.Category != nil {
		name := opportunity.Category.Name
		dto.CategoryName = &name
	}

	return dto
}

func ToOpportunityDTOs(opportunities []models.Opportunity) []OpportunityDTO {
	items := make([]OpportunityDTO, len(opportunities))
	for i, opportunity := range opportunities {
		items[i] = ToOpportunityDTO(opportunity)
	}
	return items
}
