package server

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/empleo-joven-api/internal/auth"
	"github.com/yukikurage/empleo-joven-api/internal/constants"
	"github.com/yukikurage/empleo-joven-api/internal/handlers"
	"github.com/yukikurage/empleo-joven-api/internal/middleware"
	"github.com/yukikurage/empleo-joven-api/internal/models"
	"github.com/yukikurage/empleo-joven-api/internal/repository"
	"github.com/yukikurage/empleo-joven-api/internal/services"
	"gorm.io/gorm"
)

// Options configures the router.
type Options struct {
	Logger         *slog.Logger
	Tokens         *auth.TokenManager
	BcryptCost     int
	AllowedOrigins []string
}

// NewRouter wires repositories, services and handlers over db and registers
// every route.
func NewRouter(db *gorm.DB, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	postulationRepo := repository.NewPostulationRepository(db)
	experienceRepo := repository.NewExperienceRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	authService := services.NewAuthService(userRepo, roleRepo, opts.Tokens, opts.BcryptCost)
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(roleRepo, categoryRepo)
	opportunityService := services.NewOpportunityService(opportunityRepo)
	postulationService := services.NewPostulationService(postulationRepo)
	experienceService := services.NewExperienceService(experienceRepo, postulationRepo, opportunityRepo)
	statsService := services.NewStatsService(statsRepo)

	userHandler := handlers.NewUserHandler(authService, userService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	opportunityHandler := handlers.NewOpportunityHandler(opportunityService)
	postulationHandler := handlers.NewPostulationHandler(postulationService)
	experienceHandler := handlers.NewExperienceHandler(experienceService)
	statsHandler := handlers.NewStatsHandler(statsService)

	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery(), corsMiddleware(opts.AllowedOrigins))

	requireAuth := middleware.RequireAuth(opts.Tokens)
	youth := middleware.RequireRoles(models.RoleYouth)
	admin := middleware.RequireRoles(models.RoleAdmin)
	publisher := middleware.RequireRoles(models.RoleCompany, models.RoleAdmin)
	youthOrAdmin := middleware.RequireRoles(models.RoleYouth, models.RoleAdmin)
	anyRole := middleware.RequireRoles(models.RoleYouth, models.RoleCompany, models.RoleAdmin)

	opportunityOwner := func(param string, forbidden string) gin.HandlerFunc {
		return middleware.RequireOwnership(middleware.OwnershipRule{
			Param:            param,
			Lookup:           opportunityService.PublisherOf,
			NotFoundMessage:  "Oportunidad no encontrada",
			ForbiddenMessage: forbidden,
		})
	}

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Empleo Joven API is running",
		})
	})

	users := r.Group("/usuarios")
	{
		users.POST("/registro", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.GET("/me", requireAuth, userHandler.Me)
		users.PUT("/me", requireAuth, userHandler.UpdateMe)
		users.GET("", requireAuth, admin, userHandler.List)
		users.PUT("/:id_usuario", requireAuth,
			middleware.RequireSelfOrAdmin("id_usuario", "Solo puedes editar tu propio perfil"),
			userHandler.Update)
		users.DELETE("/:id_usuario", requireAuth, admin, userHandler.Delete)

		dashboard := users.Group("/dashboard", requireAuth)
		ownStats := middleware.RequireSelfOrAdmin("id", "Solo puedes ver tus propias estadísticas")
		dashboard.GET("/joven/:id", youthOrAdmin, ownStats, statsHandler.YouthDashboard)
		dashboard.GET("/empresa/:id", publisher, ownStats, statsHandler.CompanyDashboard)
		dashboard.GET("/admin", admin, statsHandler.AdminDashboard)
		dashboard.GET("/admin/:id", admin, statsHandler.AdminDashboard)
	}

	roles := r.Group("/roles", requireAuth, admin)
	{
		roles.POST("", catalogHandler.CreateRole)
		roles.GET("", catalogHandler.ListRoles)
		roles.PUT("/:id_rol", catalogHandler.UpdateRole)
		roles.DELETE("/:id_rol", catalogHandler.DeleteRole)
	}

	categories := r.Group("/categorias")
	{
		categories.GET("", catalogHandler.ListCategories)
		categories.POST("", requireAuth, admin, catalogHandler.CreateCategory)
		categories.PUT("/:id_categoria", requireAuth, admin, catalogHandler.UpdateCategory)
		categories.DELETE("/:id_categoria", requireAuth, admin, catalogHandler.DeleteCategory)
	}

	opportunities := r.Group("/oportunidades")
	{
		opportunities.GET("", opportunityHandler.List)
		opportunities.GET("/mias", requireAuth, publisher, opportunityHandler.ListMine)
		opportunities.GET("/:id_oportunidad", opportunityHandler.Get)
		opportunities.POST("", requireAuth, publisher, opportunityHandler.Create)
		opportunities.PUT("/:id_oportunidad", requireAuth, publisher,
			opportunityOwner("id_oportunidad", "No tienes permisos para editar esta oportunidad"),
			opportunityHandler.Update)
		opportunities.DELETE("/:id_oportunidad", requireAuth, publisher,
			opportunityOwner("id_oportunidad", "No tienes permisos para eliminar esta oportunidad"),
			opportunityHandler.Delete)
	}

	postulations := r.Group("/postulaciones", requireAuth)
	{
		postulations.GET("", postulationHandler.List)
		postulations.POST("", youth, postulationHandler.Create)
		postulations.PATCH("/:id_postulacion", publisher,
			middleware.RequireOwnership(middleware.OwnershipRule{
				Param:            "id_postulacion",
				Lookup:           postulationService.ReviewerOf,
				NotFoundMessage:  "Postulación no encontrada",
				ForbiddenMessage: "No tienes permiso para modificar esta postulación",
			}),
			postulationHandler.UpdateStatus)
		postulations.DELETE("/:id_postulacion", youthOrAdmin,
			middleware.RequireOwnership(middleware.OwnershipRule{
				Param:            "id_postulacion",
				Lookup:           postulationService.ApplicantOf,
				NotFoundMessage:  "Postulación no encontrada",
				ForbiddenMessage: "Solo puedes eliminar tus propias postulaciones",
			}),
			postulationHandler.Delete)
		postulations.GET("/por-oportunidad/:id_oportunidad", publisher,
			opportunityOwner("id_oportunidad", "No tienes permiso para ver estas postulaciones"),
			postulationHandler.ListForOpportunity)
	}

	experiences := r.Group("/experiencias", requireAuth)
	{
		experiences.GET("", anyRole, experienceHandler.List)
		experiences.POST("", publisher, experienceHandler.Create)
		experiences.DELETE("/:id_experiencia", admin, experienceHandler.Delete)
		experiences.GET("/candidatos/:id_oportunidad", publisher,
			opportunityOwner("id_oportunidad", "No tienes acceso a esta oportunidad"),
			experienceHandler.Candidates)
	}

	r.GET("/estadisticas/resumen", statsHandler.Summary)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	cfg.AddAllowHeaders(constants.HeaderAuthorization, constants.HeaderRequestID)
	cfg.ExposeHeaders = []string{constants.HeaderTotalCount, constants.HeaderRequestID}
	return cors.New(cfg)
}
