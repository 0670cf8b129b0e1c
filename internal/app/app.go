package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"artbook_backend/database"
	"artbook_backend/internal/config"
	"artbook_backend/internal/handlers"
	"artbook_backend/internal/logger"
	"artbook_backend/internal/metrics"
	"artbook_backend/internal/middleware"
	"artbook_backend/internal/notify"
	"artbook_backend/internal/repositories"
	"artbook_backend/internal/routes"
	"artbook_backend/internal/services"
	"artbook_backend/internal/validator"
	"artbook_backend/internal/workers"
	"artbook_backend/internal/wizard"
	"artbook_backend/pkg/apperrors"
	"artbook_backend/ws"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Dependencies overrides the collaborators New would otherwise build from
// the config. Zero fields get the defaults.
type Dependencies struct {
	Catalog  repositories.CatalogRepository
	Notifier notify.Notifier
	Metrics  *metrics.Manager
	Delay    wizard.Delay
}

type App struct {
	cfg      *config.Config
	router   *gin.Engine
	services *services.ServiceContainer
	hub      *ws.Hub
	worker   *workers.DraftWorker
	db       *gorm.DB
}

// Run loads the config and serves until SIGINT or SIGTERM.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := New(cfg, Dependencies{})
	if err != nil {
		logger.Fatal("Failed to initialize application", "error", err)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		logger.Fatal("Server error", "error", err)
	}
	logger.Info("Server stopped")
}

func New(cfg *config.Config, deps Dependencies) (*App, error) {
	a := &App{cfg: cfg}

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	apperrors.SetDebug(cfg.Server.Env == "development")

	catalog, kind := deps.Catalog, "custom"
	if catalog == nil {
		var err error
		catalog, kind, err = a.openCatalog()
		if err != nil {
			return nil, err
		}
	}

	m := deps.Metrics
	if m == nil && cfg.Metrics.Enabled {
		m = metrics.NewManager(metrics.WithRuntimeCollectors())
	}

	notifier := deps.Notifier
	if notifier == nil {
		notifier = buildNotifier(cfg)
	}

	a.hub = ws.NewHub()
	a.services = initializeServices(cfg, catalog, notifier, a.hub, m, deps.Delay)
	a.worker = workers.NewDraftWorker(a.services.OnboardingService, cfg.Onboarding.DraftTTL, cfg.Onboarding.SweepInterval)

	appHandlers := initializeHandlers(a.services, a.hub, kind)
	a.router = initializeGinRouter(m)

	var metricsHandler http.Handler
	if m != nil {
		metricsHandler = m.Handler()
	}
	routes.RegisterRoutes(a.router, appHandlers, cfg.Metrics.Path, metricsHandler)

	return a, nil
}

// openCatalog uses Postgres when a DSN is configured and the built-in seed
// otherwise.
func (a *App) openCatalog() (repositories.CatalogRepository, string, error) {
	if a.cfg.Database.DSN == "" {
		logger.Info("No database configured, serving the seed catalog from memory")
		return repositories.NewMemoryCatalogRepository(
			database.SeedArtists(), database.SeedCategories(), database.SeedBookingLeads(),
		), "memory", nil
	}

	logger.Info("Connecting to database...")
	db, err := database.Connect(a.cfg.Database.DSN)
	if err != nil {
		return nil, "", err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, "", err
	}
	if err := database.Seed(db); err != nil {
		return nil, "", err
	}
	logger.Info("Database connected")

	a.db = db
	return repositories.NewGormCatalogRepository(db), "postgres", nil
}

func buildNotifier(cfg *config.Config) notify.Notifier {
	logNotifier := notify.NewLogNotifier()
	if !cfg.Email.Enabled {
		return logNotifier
	}
	logger.Info("Email notifications enabled", "smtp_host", cfg.Email.SMTPHost)
	return notify.Multi(logNotifier, notify.NewEmailNotifier(notify.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.FromEmail,
		FromName: cfg.Email.FromName,
	}))
}

func initializeServices(
	cfg *config.Config,
	catalog repositories.CatalogRepository,
	notifier notify.Notifier,
	hub *ws.Hub,
	m *metrics.Manager,
	delay wizard.Delay,
) *services.ServiceContainer {
	applications := repositories.NewMemoryApplicationRepository()

	return &services.ServiceContainer{
		ArtistService:    services.NewArtistService(catalog, m),
		CategoryService:  services.NewCategoryService(catalog),
		DashboardService: services.NewDashboardService(catalog),
		OnboardingService: services.NewOnboardingService(
			applications,
			validator.New(),
			notifier,
			hub,
			m,
			cfg.Onboarding.SubmitDelay,
			services.WithDelay(delay),
		),
	}
}

func initializeHandlers(svc *services.ServiceContainer, hub *ws.Hub, catalogKind string) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		ArtistHandler:     handlers.NewArtistHandler(baseHandler, svc.ArtistService),
		CategoryHandler:   handlers.NewCategoryHandler(baseHandler, svc.CategoryService),
		DashboardHandler:  handlers.NewDashboardHandler(baseHandler, svc.DashboardService),
		OnboardingHandler: handlers.NewOnboardingHandler(baseHandler, svc.OnboardingService, hub),
		HealthHandler:     handlers.NewHealthHandler(catalogKind),
	}
}

func initializeGinRouter(m *metrics.Manager) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	if m != nil {
		router.Use(middleware.MetricsMiddleware(m))
	}
	return router
}

// Router exposes the HTTP handler, mainly for tests.
func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Services() *services.ServiceContainer {
	return a.services
}

// Hub is the websocket hub. Run starts it; tests that skip Run start it
// themselves.
func (a *App) Hub() *ws.Hub {
	return a.hub
}

// Run serves HTTP, the websocket hub and the draft worker until ctx is
// done, then shuts down and waits for in-flight submissions.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return a.hub.Run(gctx)
	})
	g.Go(func() error {
		return a.worker.Run(gctx)
	})
	g.Go(func() error {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		if werr := a.services.OnboardingService.Wait(shutdownCtx); werr != nil {
			logger.Warn("Submissions still in flight at shutdown", "error", werr)
		}
		return err
	})

	return g.Wait()
}

// Close releases the database connection, if any.
func (a *App) Close() {
	if a.db == nil {
		return
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
