// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finanzas-pareja/ledger/config"
	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/application/usecase/auth"
	"github.com/finanzas-pareja/ledger/internal/application/usecase/budget"
	"github.com/finanzas-pareja/ledger/internal/application/usecase/category"
	"github.com/finanzas-pareja/ledger/internal/application/usecase/movement"
	"github.com/finanzas-pareja/ledger/internal/application/usecase/recurring"
	"github.com/finanzas-pareja/ledger/internal/infra/server/router"
	"github.com/finanzas-pareja/ledger/internal/integration/adapters"
	"github.com/finanzas-pareja/ledger/internal/integration/email"
	"github.com/finanzas-pareja/ledger/internal/integration/email/templates"
	"github.com/finanzas-pareja/ledger/internal/integration/entrypoint/controller"
	"github.com/finanzas-pareja/ledger/internal/integration/entrypoint/middleware"
	"github.com/finanzas-pareja/ledger/internal/integration/persistence"
	"github.com/finanzas-pareja/ledger/internal/integration/scheduler"
)

// UseCases groups every application use case so non-HTTP front ends can call them.
type UseCases struct {
	Register      *auth.RegisterUserUseCase
	Login         *auth.LoginUserUseCase
	GetProfile    *auth.GetProfileUseCase
	UpdateProfile *auth.UpdateProfileUseCase

	ListCategories *category.ListCategoriesUseCase
	CreateCategory *category.CreateCategoryUseCase
	UpdateCategory *category.UpdateCategoryUseCase
	DeleteCategory *category.DeleteCategoryUseCase

	RecordMovement *movement.RecordMovementUseCase
	ListMovements  *movement.ListMovementsUseCase
	GetMovement    *movement.GetMovementUseCase
	UpdateMovement *movement.UpdateMovementUseCase
	DeleteMovement *movement.DeleteMovementUseCase
	Summary        *movement.GetSummaryUseCase
	Breakdown      *movement.GetCategoryBreakdownUseCase

	ListPending    *recurring.ListPendingUseCase
	Approve        *recurring.ApproveRecurringUseCase
	Reject         *recurring.RejectRecurringUseCase
	QueueReminders *recurring.QueueRemindersUseCase

	CreateBudget  *budget.CreateBudgetUseCase
	GetBudget     *budget.GetBudgetUseCase
	ListBudgets   *budget.ListBudgetsUseCase
	UpdateBudget  *budget.UpdateBudgetUseCase
	DeleteBudget  *budget.DeleteBudgetUseCase
	BudgetSummary *budget.BudgetSummaryUseCase
}

// Injector holds all application dependencies.
type Injector struct {
	Config            *config.Config
	DB                *gorm.DB
	UserRepository    adapter.UserRepository
	UseCases          *UseCases
	Router            *router.Router
	EmailWorker       *email.Worker
	ReminderScheduler *scheduler.ReminderScheduler
}

// Options carries the optional collaborators of NewInjector.
type Options struct {
	// Redis backs the login rate limiter; nil falls back to process memory.
	Redis *redis.Client
	// EmailSender delivers queued emails; nil uses Resend with the configured key.
	EmailSender adapter.EmailSender
	// Clock replaces time.Now in the use cases that default to "today".
	Clock func() time.Time
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	rejectPolicy, err := recurring.ParseRejectPolicy(cfg.Recurring.RejectPolicy)
	if err != nil {
		return nil, err
	}

	// Repositories
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	movementRepo := persistence.NewMovementRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters
	bcryptCost := adapters.DefaultBcryptCost
	if cfg.Server.Environment == "test" {
		bcryptCost = 4
	}
	passwordService := adapters.NewPasswordService(bcryptCost)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	emailSender := opts.EmailSender
	if emailSender == nil {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailService := email.NewService(emailQueueRepo)

	useCases := &UseCases{
		Register:      auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		Login:         auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		GetProfile:    auth.NewGetProfileUseCase(userRepo),
		UpdateProfile: auth.NewUpdateProfileUseCase(userRepo),

		ListCategories: category.NewListCategoriesUseCase(categoryRepo),
		CreateCategory: category.NewCreateCategoryUseCase(categoryRepo),
		UpdateCategory: category.NewUpdateCategoryUseCase(categoryRepo),
		DeleteCategory: category.NewDeleteCategoryUseCase(categoryRepo),

		RecordMovement: movement.NewRecordMovementUseCase(movementRepo),
		ListMovements:  movement.NewListMovementsUseCase(movementRepo),
		GetMovement:    movement.NewGetMovementUseCase(movementRepo, categoryRepo),
		UpdateMovement: movement.NewUpdateMovementUseCase(movementRepo, categoryRepo),
		DeleteMovement: movement.NewDeleteMovementUseCase(movementRepo),
		Summary:        movement.NewGetSummaryUseCase(movementRepo),
		Breakdown:      movement.NewGetCategoryBreakdownUseCase(movementRepo),

		ListPending:    recurring.NewListPendingUseCase(movementRepo),
		Approve:        recurring.NewApproveRecurringUseCase(movementRepo),
		Reject:         recurring.NewRejectRecurringUseCase(movementRepo, rejectPolicy),
		QueueReminders: recurring.NewQueueRemindersUseCase(userRepo, movementRepo, emailService, cfg.Email.AppBaseURL),

		CreateBudget:  budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo, movementRepo),
		GetBudget:     budget.NewGetBudgetUseCase(budgetRepo, categoryRepo, movementRepo),
		ListBudgets:   budget.NewListBudgetsUseCase(budgetRepo, categoryRepo, movementRepo),
		UpdateBudget:  budget.NewUpdateBudgetUseCase(budgetRepo, categoryRepo, movementRepo),
		DeleteBudget:  budget.NewDeleteBudgetUseCase(budgetRepo),
		BudgetSummary: budget.NewBudgetSummaryUseCase(budgetRepo, categoryRepo, movementRepo),
	}

	if opts.Clock != nil {
		useCases.Summary.WithClock(opts.Clock)
		useCases.Breakdown.WithClock(opts.Clock)
		useCases.ListPending.WithClock(opts.Clock)
		useCases.Approve.WithClock(opts.Clock)
		useCases.QueueReminders.WithClock(opts.Clock)
		useCases.CreateBudget.WithClock(opts.Clock)
		useCases.UpdateBudget.WithClock(opts.Clock)
	}

	// Controllers
	healthChecks := map[string]controller.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}

	var rateLimitStore middleware.RateLimitStore = middleware.NewMemoryStore()
	if opts.Redis != nil {
		rateLimitStore = middleware.NewRedisStore(opts.Redis)
		healthChecks["redis"] = func(ctx context.Context) error {
			return opts.Redis.Ping(ctx).Err()
		}
	}

	r := router.NewRouter(
		controller.NewHealthController(healthChecks),
		controller.NewAuthController(useCases.Register, useCases.Login),
		controller.NewUserController(useCases.GetProfile, useCases.UpdateProfile),
		controller.NewCategoryController(
			useCases.ListCategories,
			useCases.CreateCategory,
			useCases.UpdateCategory,
			useCases.DeleteCategory,
		),
		controller.NewMovementController(
			useCases.RecordMovement,
			useCases.ListMovements,
			useCases.GetMovement,
			useCases.UpdateMovement,
			useCases.DeleteMovement,
			useCases.Summary,
			useCases.Breakdown,
		),
		controller.NewRecurringController(useCases.ListPending, useCases.Approve, useCases.Reject),
		controller.NewBudgetController(
			useCases.CreateBudget,
			useCases.GetBudget,
			useCases.ListBudgets,
			useCases.UpdateBudget,
			useCases.DeleteBudget,
			useCases.BudgetSummary,
		),
		middleware.NewRateLimiter(rateLimitStore, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window),
		middleware.NewAuthMiddleware(tokenService),
	)

	worker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval:  cfg.Email.PollInterval,
		BatchSize:     cfg.Email.BatchSize,
		RetentionDays: cfg.Email.RetentionDays,
	})

	return &Injector{
		Config:            cfg,
		DB:                db,
		UserRepository:    userRepo,
		UseCases:          useCases,
		Router:            r,
		EmailWorker:       worker,
		ReminderScheduler: scheduler.NewReminderScheduler(useCases.QueueReminders, cfg.Reminder.Interval),
	}, nil
}
