package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
	"gorm.io/gorm"

	"github.com/hirebridge/backoffice/internal/config"
	"github.com/hirebridge/backoffice/internal/domain"
	"github.com/hirebridge/backoffice/internal/listview"
	"github.com/hirebridge/backoffice/internal/middleware"
	"github.com/hirebridge/backoffice/internal/module/auth"
	"github.com/hirebridge/backoffice/internal/module/company"
	"github.com/hirebridge/backoffice/internal/module/job"
	"github.com/hirebridge/backoffice/internal/module/report"
	"github.com/hirebridge/backoffice/internal/module/skill"
	"github.com/hirebridge/backoffice/internal/module/student"
	"github.com/hirebridge/backoffice/internal/module/user"
	"github.com/hirebridge/backoffice/internal/module/warning"
	"github.com/hirebridge/backoffice/internal/session"
	"github.com/hirebridge/backoffice/internal/upstream"
	"github.com/hirebridge/backoffice/internal/usercache"
)

// App holds the core application dependencies and the HTTP server.
type App struct {
	engine *gin.Engine
	db     *gorm.DB
	logger *logger.Logger
	cfg    *config.Config
}

type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

var newHTTPServer = func(addr string, handler http.Handler) httpServer {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

var notifyContext = func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

// New creates and wires a fully configured App from the given Config.
//
// It sets up logging, the session database, the upstream API client, the
// user side-cache, per-session list view registries, middleware, and routes.
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	success := false

	// 1. Setup logger.
	log, err := config.SetupLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	if cfg.Server.Mode == gin.DebugMode && cfg.Server.Host == "0.0.0.0" {
		log.Warn("insecure server config: debug mode on 0.0.0.0 may expose debug behavior and permissive CORS")
	}
	defer func() {
		if success {
			return
		}
		if err := log.Close(); err != nil {
			slog.Error("logger close error", slog.Any("error", err))
		}
	}()

	// 2. Setup session database.
	db, err := config.SetupDatabase(&cfg.Database, log.Logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	defer func() {
		if success {
			return
		}
		sqlDB, err := db.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", slog.Any("error", err))
		}
	}()

	// 3. The session table is owned by this service, so it is always migrated.
	if err := db.AutoMigrate(&domain.Session{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	// 4. Upstream API client and services.
	client := upstream.NewClient(cfg.Upstream.BaseURL, durationOr(cfg.Upstream.Timeout, 0), log.Logger)
	authSvc := upstream.NewAuthService(client)
	studentSvc := upstream.NewStudentService(client)
	companySvc := upstream.NewCompanyService(client)
	jobSvc := upstream.NewJobService(client)
	skillSvc := upstream.NewSkillService(client)
	reportSvc := upstream.NewReportService(client)
	userSvc := upstream.NewUserService(client)
	warningSvc := upstream.NewWarningService(client)

	// 5. Console sessions.
	sessionStore := session.NewStore(db)
	sessions := session.NewService(sessionStore, cfg.Session.Secret, durationOr(cfg.Session.TokenExpiry, 24*time.Hour))

	// 6. User side-cache shared by every screen that displays account state.
	userCache := usercache.New(userSvc, log.Logger, usercache.Options{
		TTL:              durationOr(cfg.Cache.UserTTL, 0),
		PrimeConcurrency: cfg.Cache.PrimeConcurrency,
		PrimeTimeout:     durationOr(cfg.Cache.PrimeTimeout, 0),
	})

	// 7. Per-session list view registries, dropped together on logout.
	viewTTL := durationOr(cfg.Session.ViewTTL, 0)
	studentViews := listview.NewRegistry(func() *listview.Controller[domain.Student] {
		return listview.NewController(studentSvc.GetPage, listview.Options{})
	}, viewTTL)
	companyViews := listview.NewRegistry(func() *listview.Controller[domain.Company] {
		return listview.NewController(companySvc.GetPage, listview.Options{})
	}, viewTTL)
	jobViews := listview.NewRegistry(func() *listview.Controller[domain.Job] {
		return listview.NewController(jobSvc.GetPage, listview.Options{})
	}, viewTTL)
	skillViews := listview.NewRegistry(func() *listview.Controller[domain.Skill] {
		return listview.NewController(skillSvc.GetPage, listview.Options{})
	}, viewTTL)
	reportViews := listview.NewRegistry(func() *listview.Controller[domain.Report] {
		return listview.NewController(reportSvc.GetPage, listview.Options{})
	}, viewTTL)
	warningViews := listview.NewRegistry(func() *listview.Controller[domain.Warning] {
		return listview.NewController(warningSvc.GetPage, listview.Options{})
	}, viewTTL)

	// 8. Manual dependency injection: service → handler → module.
	authService := auth.NewService(authSvc, sessions, log.Logger,
		studentViews.Drop,
		companyViews.Drop,
		jobViews.Drop,
		skillViews.Drop,
		reportViews.Drop,
		warningViews.Drop,
	)
	modules := []Module{
		auth.NewModule(auth.NewHandler(authService)),
		student.NewModule(student.NewHandler(studentSvc, studentViews, userCache)),
		company.NewModule(company.NewHandler(companySvc, companyViews, userCache)),
		job.NewModule(job.NewHandler(jobSvc, jobViews)),
		skill.NewModule(skill.NewHandler(skillSvc, skillViews)),
		report.NewModule(report.NewHandler(reportSvc, reportViews)),
		warning.NewModule(warning.NewHandler(warningSvc, warningViews)),
		user.NewModule(user.NewHandler(userSvc, userCache)),
	}

	// 9. Create Gin engine with custom middleware (not gin.Default()).
	if err := validateGinMode(cfg.Server.Mode); err != nil {
		return nil, err
	}
	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()

	// In release mode, when no allowlist is configured, default to deny
	// cross-origin requests.
	corsConfig := resolveCORSConfig(cfg.Server.Mode, cfg.Server.CORS.AllowOrigins)

	engine.Use(
		middleware.Recovery(log.Logger),
		middleware.RequestID(),
		middleware.Logger(log.Logger),
		middleware.CORSWithConfig(corsConfig),
	)

	// 10. Register all routes.
	if err := RegisterRoutes(engine, &RouteDeps{
		Modules:  modules,
		Sessions: sessions,
		DB:       db,
	}); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	success = true
	return &App{
		engine: engine,
		db:     db,
		logger: log,
		cfg:    cfg,
	}, nil
}

// durationOr parses a config duration, falling back to def when the field is
// unset. Validation has already rejected malformed values.
func durationOr(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

func resolveCORSConfig(mode string, configuredAllowOrigins []string) middleware.CORSConfig {
	corsConfig := middleware.DefaultCORSConfig()

	if len(configuredAllowOrigins) > 0 {
		corsConfig.AllowOrigins = configuredAllowOrigins
		return corsConfig
	}

	if mode == gin.ReleaseMode {
		corsConfig.AllowOrigins = []string{}
	}

	return corsConfig
}

func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	default:
		return fmt.Errorf("invalid server.mode %q: must be one of %q, %q, %q", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
	}
}

// Run starts the HTTP server and blocks until a shutdown signal is received.
// It performs graceful shutdown with a 5-second timeout and closes the
// session database connection.
func (a *App) Run() error {
	if a == nil {
		return errors.New("app is nil")
	}
	if a.cfg == nil {
		return errors.New("app config is nil")
	}
	if a.engine == nil {
		return errors.New("app engine is nil")
	}

	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	srv := newHTTPServer(addr, a.engine)

	// Listen for SIGINT / SIGTERM.
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server started", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("server error: %w", err)
	}

	if runErr == nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown error", slog.Any("error", err))
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.logger.Error("database close error", slog.Any("error", err))
			} else {
				a.logger.Info("database connection closed")
			}
		}
	}

	a.logger.Info("server stopped")
	if err := a.logger.Close(); err != nil {
		slog.Error("logger close error", slog.Any("error", err))
	}

	return runErr
}
