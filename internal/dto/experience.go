package dto

import "github.com/yukikurage/empleo-joven-api/internal/models"

// ExperienceDTO represents a recorded experience
type ExperienceDTO struct {
	ID            uint64       `json:"id_experiencia"`
	UserID        uint64       `json:"id_usuario"`
	OpportunityID uint64       `json:"id_oportunidad"`
	Description   string       `json:"descripcion"`
	StartDate     *models.Date `json:"fecha_inicio"`
	EndDate       *models.Date `json:"fecha_fin"`
	FinalComment  *string      `json:"comentario_final"`
}

// ExperienceListItemDTO adds the joined names shown in listings.
// YouthName is omitted when youth list their own experiences.
type ExperienceListItemDTO struct {
	ExperienceDTO
	YouthName        string `json:"nombre_joven,omitempty"`
	OpportunityTitle string `json:"titulo_oportunidad"`
}

// ToExperienceDTO converts an Experience model to ExperienceDTO
func ToExperienceDTO(experience models.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:            experience.ID,
		UserID:        experience.UserID,
		OpportunityID: experience.OpportunityID,
		Description:   experience.Description,
		StartDate:     experience.StartDate,
		EndDate:       experience.EndDate,
		FinalComment:  experience.FinalComment,
	}
}

func ToExperienceListDTOs(role models.RoleID, experiences []models.Experience) []ExperienceListItemDTO {
	items := make([]ExperienceListItemDTO, len(experiences))
	for i, experience := range experiences {
		item := ExperienceListItemDTO{
			ExperienceDTO:    ToExperienceDTO(experience),
			OpportunityTitle: opportunityTitle(experience.Opportunity),
		}
		if role != models.RoleYouth && experience.User != nil {
			item.YouthName = experience.User.Name
		}
		items[i] = item
	}
	return items
}
