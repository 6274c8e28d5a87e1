package dto

import (
	"time"

	"github.com/yukikurage/empleo-joven-api/internal/models"
)

// PostulationDTO represents a postulation row
type PostulationDTO struct {
	ID            uint64    `json:"id_postulacion"`
	UserID        uint64    `json:"id_usuario"`
	OpportunityID uint64    `json:"id_oportunidad"`
	AppliedAt     time.Time `json:"fecha_postulacion"`
	Status        string    `json:"estado"`
	Message       *string   `json:"mensaje"`
}

// ApplicantPostulationDTO is a postulation as seen by its applicant
type ApplicantPostulationDTO struct {
	PostulationDTO
	Title string `json:"titulo"`
}

// ReviewPostulationDTO is a postulation as seen by the opportunity's
// publisher or an administrator
type ReviewPostulationDTO struct {
	PostulationDTO
	OpportunityTitle string `json:"titulo_oportunidad"`
	ApplicantName    string `json:"nombre_usuario"`
}

// OpportunityPostulationDTO lists postulations to a single opportunity
// with the applicant's contact details
type OpportunityPostulationDTO struct {
	PostulationDTO
	Name  string `json:"nombre"`
	Email string `json:"correo"`
}

// ToPostulationDTO converts a Postulation model to PostulationDTO
func ToPostulationDTO(postulation models.Postulation) PostulationDTO {
	return PostulationDTO{
		ID:            postulation.ID,
		UserID:        postulation.UserID,
		OpportunityID: postulation.OpportunityID,
		AppliedAt:     postulation.AppliedAt,
		Status:        postulation.Status,
		Message:       postulation.Message,
	}
}

// ToPostulationListDTOs shapes the listing for the caller's role. Youth see
// the opportunity title only; everyone else also sees the applicant.
func ToPostulationListDTOs(role models.RoleID, postulations []models.Postulation) interface{} {
	if role == models.RoleYouth {
		items := make([]ApplicantPostulationDTO, len(postulations))
		for i, postulation := range postulations {
			items[i] = ApplicantPostulationDTO{
				PostulationDTO: ToPostulationDTO(postulation),
				Title:          opportunityTitle(postulation.Opportunity),
			}
		}
		return items
	}

	items := make([]ReviewPostulationDTO, len(postulations))
	for i, postulation := range postulations {
		item := ReviewPostulationDTO{
			PostulationDTO:   ToPostulationDTO(postulation),
			OpportunityTitle: opportunityTitle(postulation.Opportunity),
		}
		if postulation.User != nil {
			item.ApplicantName = postulation.User.Name
		}
		items[i] = item
	}
	return items
}

func ToOpportunityPostulationDTOs(postulations []models.Postulation) []OpportunityPostulationDTO {
	items := make([]OpportunityPostulationDTO, len(postulations))
	for i, postulation := range postulations {
		item := OpportunityPostulationDTO{PostulationDTO: ToPostulationDTO(postulation)}
		if postulation.User != nil {
			item.Name = postulation.User.Name
			item.Email = postulation.User.Email
		}
		items[i] = item
	}
	return items
}

func opportunityTitle(opportunity *models.Opportunity) string {
	if opportunity == nil {
		return ""
	}
	return opportunity.Title
}
