package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/empleo-joven-api/internal/dto"
	apierrors "github.com/yukikurage/empleo-joven-api/internal/errors"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/repository"
	"github.com/yukikurage/empleo-joven-api/internal/services"
	"github.com/yukikurage/empleo-joven-api/internal/utils"
)

// UserHandler serves registration, login, profiles and user administration.
type UserHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, userService *services.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

type profileRequest struct {
	Name      string  `json:"nombre"`
	Email     string  `json:"correo"`
	Bio       *string `json:"biografia"`
	ResumeURL *string `json:"cv_url"`
}

func (r profileRequest) fields() repository.UserProfileFields {
	return repository.UserProfileFields{
		Name:      r.Name,
		Email:     r.Email,
		Bio:       r.Bio,
		ResumeURL: r.ResumeURL,
	}
}

// Register creates an account. Required fields are checked by the service so
// the response can name every missing one.
func (h *UserHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name      string        `json:"nombre"`
		Email     string        `json:"correo"`
		Password  string        `json:"contrasena"`
		RoleID    models.RoleID `json:"tipo_usuario"`
		Bio       *string       `json:"biografia"`
		ResumeURL *string       `json:"cv_url"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Cuerpo de la solicitud inválido")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		RoleID:    req.RoleID,
		Bio:       req.Bio,
		ResumeURL: req.ResumeURL,
	})
	if err != nil {
		respondError(c, err, "Error creando el usuario")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Login exchanges credentials for a signed token.
func (h *UserHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"correo"`
		Password string `json:"contrasena"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Cuerpo de la solicitud inválido")
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Error al iniciar sesión")
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// Me returns the caller's profile with the role name.
func (h *UserHandler) Me(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err, "Error al obtener perfil")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*user))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Cuerpo de la solicitud inválido")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), identity.UserID, req.fields())
	if err != nil {
		respondError(c, err, "Error al actualizar perfil")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*user))
}

// List returns every user. Pagination is applied only when requested.
func (h *UserHandler) List(c *gin.Context) {
	page := utils.GetPaginationParams(c)

	users, total, err := h.userService.ListUsers(c.Request.Context(), page)
	if err != nil {
		respondError(c, err, "Error al obtener usuarios")
		return
	}

	utils.SetTotalCount(c, total)
	c.JSON(http.StatusOK, dto.ToUserDTOs(users))
}

// Update edits the profile of the user in the path. Access is limited to the
// user themself or an administrator by middleware.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id_usuario")
	if !ok {
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Cuerpo de la solicitud inválido")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), id, req.fields())
	if err != nil {
		respondError(c, err, "Error al actualizar usuario")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id_usuario")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error al eliminar usuario")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Usuario eliminado"})
}
