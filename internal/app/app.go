package app

import (
	"context"
	"fmt"

	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/persistence"
	"github.com/csmqbusy/personal-finances/internal/domain/port/service"
	"github.com/csmqbusy/personal-finances/internal/domain/usecase/auth"
	"github.com/csmqbusy/personal-finances/internal/domain/usecase/category"
	"github.com/csmqbusy/personal-finances/internal/domain/usecase/goal"
	"github.com/csmqbusy/personal-finances/internal/domain/usecase/query"
	"github.com/csmqbusy/personal-finances/internal/domain/usecase/report"
	"github.com/csmqbusy/personal-finances/internal/domain/usecase/transaction"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/chart"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/database"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/logger"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/security"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/sheets"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/config"
)

// UseCases holds every domain use case built from one configuration
type UseCases struct {
	Auth         *auth.UseCase
	Categories   *category.UseCase
	Transactions *transaction.UseCase
	Goals        *goal.UseCase
	Reports      *report.UseCase
}

// NewUseCases wires the use cases over a unit of work and the optional chart and sheets services
func NewUseCases(
	cfg *config.Config,
	uow persistence.UnitOfWork,
	charts service.ChartRenderer,
	publisher service.SummaryPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UseCases {
	categoryOpts := category.Options{DefaultName: cfg.Categories.DefaultName}
	pages := query.PageDefaults{
		DefaultPageSize: cfg.Pagination.DefaultPageSize,
		MaxPageSize:     cfg.Pagination.MaxPageSize,
	}

	categories := category.NewUseCase(uow, logger.With(map[string]any{"usecase": "category"}), categoryOpts)
	transactions := transaction.NewUseCase(uow, categories, timeProvider,
		logger.With(map[string]any{"usecase": "transaction"}), pages)

	return &UseCases{
		Auth: auth.NewUseCase(
			uow,
			security.NewBcryptHasher(cfg.Auth.BcryptCost),
			security.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, timeProvider),
			timeProvider,
			logger.With(map[string]any{"usecase": "auth"}),
			categoryOpts,
		),
		Categories:   categories,
		Transactions: transactions,
		Goals:        goal.NewUseCase(uow, timeProvider, logger.With(map[string]any{"usecase": "goal"}), pages),
		Reports:      report.NewUseCase(transactions, charts, publisher, logger.With(map[string]any{"usecase": "report"})),
	}
}

// OpenDatabase connects and, when configured, migrates the schema
func OpenDatabase(ctx context.Context, cfg *config.Config, timeProvider coreport.TimeProvider, logger coreport.Logger) (*database.Manager, error) {
	manager := database.NewManager(database.FromAppConfig(cfg), logger, timeProvider)
	if _, err := manager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := manager.Migrate(ctx); err != nil {
			manager.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}
	return manager, nil
}

// ChartRenderer returns the AMQP client when a broker is configured, else the in-process renderer
// The returned close function releases the broker connection
func ChartRenderer(cfg *config.Config, logger coreport.Logger) (service.ChartRenderer, func() error, error) {
	if cfg.Chart.AmqpURL == "" {
		logger.Warn("No chart broker configured, rendering charts in process", nil)
		return chart.NewRenderer(cfg.Chart.Width, cfg.Chart.Height), func() error { return nil }, nil
	}

	conn, err := chart.Dial(cfg.Chart.AmqpURL)
	if err != nil {
		return nil, nil, err
	}

	client, err := chart.NewClient(conn.Channel(), cfg.Chart.Queue, cfg.Chart.Timeout, logger)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return client, conn.Close, nil
}

// SummaryPublisher returns the Sheets publisher when enabled, else nil
func SummaryPublisher(ctx context.Context, cfg *config.Config, logger coreport.Logger) (service.SummaryPublisher, error) {
	if !cfg.Sheets.Enabled {
		return nil, nil
	}
	publisher, err := sheets.NewPublisher(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsFile, logger)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}

// NewLogger builds the zap logger at the configured level
func NewLogger(cfg *config.Config) coreport.Logger {
	l := logger.NewZapLogger(cfg.IsProduction())
	l.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))
	return l
}
