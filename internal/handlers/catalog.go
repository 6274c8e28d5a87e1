package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/empleo-joven-api/internal/errors"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/services"
)

// CatalogHandler serves the admin-managed role and category lists.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type roleRequest struct {
	Name string `json:"nombre_rol" binding:"required"`
}

type categoryRequest struct {
	Name string `json:"nombre_categoria" binding:"required"`
}

func (h *CatalogHandler) CreateRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "nombre_rol es obligatorio")
		return
	}

	role, err := h.catalogService.CreateRole(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err, "Error creando el rol")
		return
	}

	c.JSON(http.StatusCreated, role)
}

func (h *CatalogHandler) ListRoles(c *gin.Context) {
	roles, err := h.catalogService.ListRoles(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error obteniendo los roles")
		return
	}

	c.JSON(http.StatusOK, roles)
}

func (h *CatalogHandler) UpdateRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id_rol")
	if !ok {
		return
	}

	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "nombre_rol es obligatorio")
		return
	}

	role, err := h.catalogService.RenameRole(c.Request.Context(), models.RoleID(id), req.Name)
	if err != nil {
		respondError(c, err, "Error actualizando el rol")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rol actualizado", "rol": role})
}

func (h *CatalogHandler) DeleteRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id_rol")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteRole(c.Request.Context(), models.RoleID(id)); err != nil {
		respondError(c, err, "Error eliminando el rol")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rol eliminado"})
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "nombre_categoria es obligatorio")
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err, "Error creando la categoría")
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error obteniendo las categorías")
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id_categoria")
	if !ok {
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "nombre_categoria es obligatorio")
		return
	}

	category, err := h.catalogService.RenameCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err, "Error actualizando la categoría")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Categoría actualizada", "categoria": category})
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id_categoria")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error eliminando la categoría")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Categoría eliminada"})
}
