// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finanzas-pareja/ledger/internal/integration/entrypoint/controller"
	"github.com/finanzas-pareja/ledger/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	userController      *controller.UserController
	categoryController  *controller.CategoryController
	movementController  *controller.MovementController
	recurringController *controller.RecurringController
	budgetController    *controller.BudgetController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	categoryController *controller.CategoryController,
	movementController *controller.MovementController,
	recurringController *controller.RecurringController,
	budgetController *controller.BudgetController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		userController:      userController,
		categoryController:  categoryController,
		movementController:  movementController,
		recurringController: recurringController,
		budgetController:    budgetController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.engine.GET("/health", r.healthController.Check)
	r.setupAPIRoutes()

	return r.engine
}

// setupAPIRoutes configures the /api/v1 routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		login := []gin.HandlerFunc{r.authController.Login}
		if r.loginRateLimiter != nil {
			login = append([]gin.HandlerFunc{r.loginRateLimiter.Middleware()}, login...)
		}
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", login...)
	}

	authenticated := v1.Group("")
	authenticated.Use(r.authMiddleware.Authenticate())

	users := authenticated.Group("/users")
	{
		users.GET("/me", r.userController.GetProfile)
		users.PATCH("/me", r.userController.UpdateProfile)
	}

	categories := authenticated.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PATCH("/:id", r.categoryController.Update)
		categories.DELETE("/:id", r.categoryController.Delete)
	}

	movements := authenticated.Group("/movements")
	{
		movements.GET("", r.movementController.List)
		movements.POST("", r.movementController.Create)
		movements.GET("/summary", r.movementController.Summary)
		movements.GET("/breakdown", r.movementController.Breakdown)
		movements.GET("/:id", r.movementController.Get)
		movements.PATCH("/:id", r.movementController.Update)
		movements.DELETE("/:id", r.movementController.Delete)
	}

	recurring := authenticated.Group("/recurring")
	{
		recurring.GET("/pending", r.recurringController.ListPending)
		recurring.POST("/:id/approve", r.recurringController.Approve)
		recurring.POST("/:id/reject", r.recurringController.Reject)
	}

	budgets := authenticated.Group("/budgets")
	{
		budgets.GET("", r.budgetController.List)
		budgets.POST("", r.budgetController.Create)
		budgets.GET("/:id", r.budgetController.Get)
		budgets.PUT("/:id", r.budgetController.Update)
		budgets.DELETE("/:id", r.budgetController.Delete)
	}

	reports := authenticated.Group("/reports")
	{
		reports.GET("/budget-summary", r.budgetController.Summary)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
