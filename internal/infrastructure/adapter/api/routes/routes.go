package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/handler"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/middleware"
)

// KindHandlers serve the routes of one transaction kind
type KindHandlers struct {
	Path         string // spendings or incomes
	Categories   *handler.CategoryHandler
	Transactions *handler.TransactionHandler
	Summary      *handler.SummaryHandler
}

// Handlers groups every API handler
type Handlers struct {
	Auth   *handler.AuthHandler
	Goals  *handler.GoalHandler
	Health *handler.HealthHandler
	Kinds  []KindHandlers
}

// SetupRoutes configures all the routes for the API under /api/v1
func SetupRoutes(router *gin.Engine, h Handlers, auth gin.HandlerFunc) {
	api := router.Group("/api/v1")

	api.GET("/health", h.Health.Health)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/sign-up", h.Auth.SignUp)
		authRoutes.POST("/sign-in", h.Auth.SignIn)
		authRoutes.POST("/sign-out", h.Auth.SignOut)
	}

	private := api.Group("", auth)

	userRoutes := private.Group("/users")
	{
		userRoutes.GET("/me", h.Auth.Me)
		userRoutes.DELETE("/me", h.Auth.Deactivate)
	}

	for _, k := range h.Kinds {
		group := private.Group("/" + k.Path)

		group.GET("/categories", k.Categories.List)
		group.POST("/categories", k.Categories.Create)
		group.PATCH("/categories/:id", k.Categories.Rename)
		group.DELETE("/categories/:id", k.Categories.Delete)

		group.GET("/summary", k.Summary.Summary)
		group.GET("/summary/chart", k.Summary.SummaryChart)
		group.GET("/summary/annual", k.Summary.Annual)
		group.GET("/summary/annual/chart", k.Summary.AnnualChart)
		group.POST("/summary/annual/sheets", k.Summary.PublishAnnual)
		group.GET("/summary/monthly", k.Summary.Monthly)
		group.GET("/summary/monthly/chart", k.Summary.MonthlyChart)

		group.GET("/export", k.Transactions.Export)

		group.GET("", k.Transactions.List)
		group.POST("", k.Transactions.Create)
		group.GET("/:id", k.Transactions.Get)
		group.PATCH("/:id", k.Transactions.Update)
		group.DELETE("/:id", k.Transactions.Delete)
	}

	goalRoutes := private.Group("/goals")
	{
		goalRoutes.GET("", h.Goals.List)
		goalRoutes.POST("", h.Goals.Create)
		goalRoutes.GET("/:id", h.Goals.Get)
		goalRoutes.PATCH("/:id", h.Goals.Update)
		goalRoutes.DELETE("/:id", h.Goals.Delete)
		goalRoutes.POST("/:id/payments", h.Goals.Pay)
		goalRoutes.GET("/:id/progress", h.Goals.Progress)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
