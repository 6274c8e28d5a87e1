package dto

import (
	"time"

	"github.com/yukikurage/empleo-joven-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash is never
// included.
type UserDTO struct {
	ID        uint64        `json:"id_usuario"`
	Name      string        `json:"nombre"`
	Email     string        `json:"correo"`
	RoleID    models.RoleID `json:"tipo_usuario"`
	Bio       *string       `json:"biografia"`
	ResumeURL *string       `json:"cv_url"`
	CreatedAt time.Time     `json:"fecha_registro"`
}

// ProfileDTO is the caller's own profile with the role name resolved
type ProfileDTO struct {
	UserDTO
	RoleName string `json:"rol"`
}

// LoginResponse carries the signed token
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a plain confirmation
type MessageResponse struct {
	Message string `json:"message"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		RoleID:    user.RoleID,
		Bio:       user.Bio,
		ResumeURL: user.ResumeURL,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	items := make([]UserDTO, len(users))
	for i, user := range users {
		items[i] = ToUserDTO(user)
	}
	return items
}

// ToProfileDTO uses the preloaded role name, falling back to the built-in
// name for the role id.
func ToProfileDTO(user models.User) ProfileDTO {
	name := user.RoleID.String()
	if user.Role != nil && user.Role.Name != "" {
		name = user.Role.Name
	}
	return ProfileDTO{
		UserDTO:  ToUserDTO(user),
		RoleName: name,
	}
}

// CandidateDTO is an applicant accepted for an opportunity
type CandidateDTO struct {
	ID   uint64 `json:"id_usuario"`
	Name string `json:"nombre"`
}

func ToCandidateDTOs(users []models.User) []CandidateDTO {
	items := make([]CandidateDTO, len(users))
	for i, user := range users {
		items[i] = CandidateDTO{ID: user.ID, Name: user.Name}
	}
	return items
}
