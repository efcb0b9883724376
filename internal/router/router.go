package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"claimguard/internal/domain"
	"claimguard/internal/handler"
	"claimguard/internal/middleware"
	"claimguard/internal/service"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	File     *handler.FileHandler
	Tenant   *handler.TenantHandler
	User     *handler.UserHandler
	Property *handler.PropertyHandler
	Claim    *handler.ClaimHandler
	Document *handler.DocumentHandler
	Report   *handler.ReportHandler
	Health   *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// OpenAPI documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	protected.Use(middleware.TenantGuard())

	// File routes
	files := protected.Group("/files")
	files.POST("/upload", h.File.Upload)
	files.GET("", h.File.List)
	files.GET("/:id", h.File.GetByID)
	files.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.File.Delete)

	// Property routes
	properties := protected.Group("/properties")
	properties.POST("", h.Property.Create)
	properties.GET("", h.Property.List)
	properties.GET("/:id", h.Property.GetByID)
	properties.PUT("/:id", h.Property.Update)
	properties.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Property.Delete)

	// Claim routes
	claims := protected.Group("/claims")
	claims.POST("", h.Claim.Create)
	claims.GET("", h.Claim.List)
	claims.GET("/:id", h.Claim.GetByID)
	claims.PUT("/:id", h.Claim.Update)
	claims.PUT("/:id/status", h.Claim.ChangeStatus)
	claims.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Claim.Delete)

	// Document routes
	documents := protected.Group("/documents")
	documents.POST("", h.Document.Create)
	documents.GET("", h.Document.List)
	documents.GET("/:id", h.Document.GetByID)
	documents.POST("/:id/retry", h.Document.Retry)
	documents.POST("/:id/analyze", h.Document.Analyze)
	documents.PUT("/:id/review", h.Document.UpdateReview)
	documents.PUT("/:id/findings", h.Document.EditFindings)
	documents.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Document.Delete)

	// Report routes
	reports := protected.Group("/reports")
	reports.GET("/claims", h.Report.Register)
	reports.GET("/claims/export", h.Report.ExportCSV)
	reports.GET("/claims/export.xlsx", h.Report.ExportXLSX)
	reports.GET("/claims-by-status", h.Report.ByStatus)
	reports.GET("/claims-by-peril", h.Report.ByPeril)
	reports.GET("/analysis-overview", h.Report.AnalysisOverview)

	// User management (tenant-scoped)
	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	// Admin routes - tenant management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/tenants", h.Tenant.Create)
	admin.GET("/tenants", h.Tenant.List)
	admin.GET("/tenants/:id", h.Tenant.GetByID)
	admin.PUT("/tenants/:id", h.Tenant.Update)
	admin.DELETE("/tenants/:id", h.Tenant.Delete)

	return r
}
