// internal/app/app.go

// Package app wires the client: config, logger, session stores, snapshot
// cache, gateway clients and the typed services. Both binaries build the
// same App; the admin CLI simply uses the admin-scoped half.
package app

import (
	"fmt"

	"home4paws-cli/internal/auth"
	"home4paws-cli/internal/cache"
	"home4paws-cli/internal/common/config"
	"home4paws-cli/internal/common/httpclient"
	"home4paws-cli/internal/common/logger"
	"home4paws-cli/internal/dashboard"
	"home4paws-cli/internal/prompt"
	"home4paws-cli/internal/resources"
	"home4paws-cli/internal/session"
)

// App is the assembled client.
type App struct {
	Cfg *config.Config
	Log logger.Logger

	UserSessions  *session.Store
	AdminSessions *session.Store
	Cache         cache.Store

	// UserClient carries the user token; AdminClient the admin one. They
	// share one transport configuration but never a token slot.
	UserClient  *httpclient.Client
	AdminClient *httpclient.Client

	Auth      *auth.Controller
	AdminAuth *auth.AdminController

	Dogs         *resources.DogService
	Applications *resources.ApplicationService
	Reports      *resources.ReportService
	Surrenders   *resources.SurrenderService
	Messages     *resources.MessageService
	Users        *resources.UserService
	Admin        *resources.AdminService

	Dashboard *dashboard.Collector
	Prompter  *prompt.Prompter
}

// New loads configuration and assembles the client.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	return NewWithConfig(cfg, log)
}

// NewWithConfig assembles the client around an existing config and logger;
// tests use it with temp dirs and httptest origins.
func NewWithConfig(cfg *config.Config, log logger.Logger) (*App, error) {
	userSessions, err := session.NewStore(cfg.Storage.Dir, session.ScopeUser, log)
	if err != nil {
		return nil, fmt.Errorf("open user session store: %w", err)
	}
	adminSessions, err := session.NewStore(cfg.Storage.Dir, session.ScopeAdmin, log)
	if err != nil {
		return nil, fmt.Errorf("open admin session store: %w", err)
	}

	snapshots, err := cache.New(cfg.Cache, cfg.Storage.Dir, log)
	if err != nil {
		return nil, fmt.Errorf("open snapshot cache: %w", err)
	}

	userClient := httpclient.New(cfg.API, userSessions, log)
	adminClient := userClient.WithTokenSource(adminSessions)

	a := &App{
		Cfg:           cfg,
		Log:           log,
		UserSessions:  userSessions,
		AdminSessions: adminSessions,
		Cache:         snapshots,
		UserClient:    userClient,
		AdminClient:   adminClient,
		Prompter:      prompt.NewStdio(),
	}

	a.Auth = auth.NewController(userClient, userSessions, adminSessions, snapshots, cfg.Auth, log)
	a.AdminAuth = auth.NewAdminController(adminClient, adminSessions, snapshots, log)

	a.Dogs = resources.NewDogService(userClient, log)
	a.Applications = resources.NewApplicationService(userClient, log)
	a.Reports = resources.NewReportService(userClient, snapshots, log)
	a.Surrenders = resources.NewSurrenderService(userClient, snapshots, log)
	a.Messages = resources.NewMessageService(userClient, log)
	a.Users = resources.NewUserService(userClient, log)
	a.Admin = resources.NewAdminService(adminClient, log)
	a.Dashboard = dashboard.NewCollector(a.Admin, log)

	return a, nil
}

// UserKey returns the cache key for the current user session, or "" when
// anonymous.
func (a *App) UserKey() string {
	sess := a.UserSessions.Current()
	if sess == nil {
		return ""
	}
	return auth.UserKey(sess)
}

// Close releases held resources.
func (a *App) Close() {
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
}
