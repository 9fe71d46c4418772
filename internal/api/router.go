package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/atelierhq/studio-api/internal/api/handler"
	"github.com/atelierhq/studio-api/internal/api/middleware"
	"github.com/atelierhq/studio-api/internal/core/domain"
	"github.com/atelierhq/studio-api/internal/core/service"
	"github.com/atelierhq/studio-api/internal/infrastructure/config"
	mongorepo "github.com/atelierhq/studio-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/atelierhq/studio-api/internal/infrastructure/db/redis"
	"github.com/atelierhq/studio-api/internal/infrastructure/email"
	"github.com/atelierhq/studio-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Route groups:
//   - public:     marketing site reads, intake forms, auth, health, metrics
//   - authed:     any valid JWT (client or admin); services scope further
//   - admin:      valid JWT with the admin role
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("studio"))

	// --- Repositories ---
	profileRepo := mongorepo.NewProfileRepository(db)
	clientRepo := mongorepo.NewClientRepository(db)
	projectRepo := mongorepo.NewProjectRepository(db)
	blogRepo := mongorepo.NewBlogRepository(db)
	docRepo := mongorepo.NewDocRepository(db)
	intakeRepo := mongorepo.NewIntakeRepository(db)
	ticketRepo := mongorepo.NewTicketRepository(db)
	licenseRepo := mongorepo.NewLicenseRepository(db)
	announcementRepo := mongorepo.NewAnnouncementRepository(db)
	activityRepo := mongorepo.NewActivityRepository(db)

	// --- Infrastructure ---
	throttle := redisinfra.NewSubmissionThrottle(rdb)
	mailer := email.New(email.Config{APIKey: cfg.Email.ResendAPIKey, From: cfg.Email.From})
	signer := storage.New(storage.Config{BaseURL: cfg.Storage.BaseURL, SigningKey: cfg.Storage.SigningKey})

	// --- Services ---
	authService := service.NewAuthService(profileRepo, cfg.JWTSecret, 24*time.Hour)
	clientService := service.NewClientService(clientRepo, activityRepo, log)
	projectService := service.NewProjectService(projectRepo, activityRepo, log)
	blogService := service.NewBlogService(blogRepo, activityRepo, log)
	docService := service.NewDocService(docRepo, activityRepo, log)
	intakeService := service.NewIntakeService(intakeRepo, throttle, mailer, cfg.Email.AdminEmail, log)
	ticketService := service.NewTicketService(ticketRepo, log)
	licenseService := service.NewLicenseService(licenseRepo, projectRepo, activityRepo, cfg.License.MaxDomains, log)
	searchService := service.NewSearchService(blogRepo, projectRepo, log)
	dashboardService := service.NewDashboardService(clientRepo, projectRepo, blogRepo, intakeRepo, activityRepo)
	announcementService := service.NewAnnouncementService(announcementRepo, activityRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	projectHandler := handler.NewProjectHandler(projectService)
	blogHandler := handler.NewBlogHandler(blogService)
	docHandler := handler.NewDocHandler(docService)
	intakeHandler := handler.NewIntakeHandler(intakeService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	licenseHandler := handler.NewLicenseHandler(licenseService)
	searchHandler := handler.NewSearchHandler(searchService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	announcementHandler := handler.NewAnnouncementHandler(announcementService)
	uploadHandler := handler.NewUploadHandler(signer)
	healthHandler := handler.NewHealthHandler(db.Client(), rdb)

	authMW := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Public marketing surface ---
	v1 := e.Group("/v1")
	v1.POST("/contact", intakeHandler.SubmitContact)
	v1.POST("/project-requests", intakeHandler.SubmitRequest)
	v1.GET("/blog", blogHandler.ListPublic)
	v1.GET("/blog/:slug", blogHandler.GetPublic)
	v1.GET("/portfolio", projectHandler.Portfolio)
	v1.GET("/docs", docHandler.List)
	v1.GET("/search", searchHandler.Search)
	v1.GET("/announcement", announcementHandler.Latest)

	// --- Authenticated surface (client or admin) ---
	authed := v1.Group("", authMW)
	authed.GET("/projects", projectHandler.List)
	authed.GET("/projects/:slug", projectHandler.Get)
	authed.POST("/tickets", ticketHandler.Create)
	authed.GET("/tickets", ticketHandler.List)
	authed.GET("/tickets/:id", ticketHandler.Get)
	authed.POST("/tickets/:id/messages", ticketHandler.AddMessage)
	authed.GET("/licenses", licenseHandler.List)
	authed.GET("/licenses/:id", licenseHandler.Get)
	authed.POST("/licenses/:id/domains", licenseHandler.RegisterDomain)

	// --- Admin back office ---
	admin := v1.Group("/admin", authMW, adminOnly)
	admin.GET("/dashboard", dashboardHandler.Counts)
	admin.GET("/dashboard/activity", dashboardHandler.Activity)

	admin.POST("/clients", clientHandler.Create)
	admin.GET("/clients", clientHandler.List)
	admin.PATCH("/clients/:id", clientHandler.Update)
	admin.DELETE("/clients/:id", clientHandler.Delete)

	admin.POST("/projects", projectHandler.Create)
	admin.PATCH("/projects/:id", projectHandler.Update)
	admin.DELETE("/projects/:id", projectHandler.Delete)

	admin.GET("/blog", blogHandler.ListAdmin)
	admin.POST("/blog", blogHandler.Create)
	admin.PATCH("/blog/:id", blogHandler.Update)
	admin.DELETE("/blog/:id", blogHandler.Delete)

	admin.POST("/docs", docHandler.Create)
	admin.PATCH("/docs/:id", docHandler.Update)
	admin.DELETE("/docs/:id", docHandler.Delete)

	admin.GET("/contact-messages", intakeHandler.ListContacts)
	admin.GET("/project-requests", intakeHandler.ListRequests)

	admin.PATCH("/tickets/:id/status", ticketHandler.UpdateStatus)

	admin.POST("/licenses", licenseHandler.Issue)
	admin.PATCH("/licenses/:id/status", licenseHandler.UpdateStatus)
	admin.DELETE("/licenses/:id", licenseHandler.Delete)

	admin.POST("/announcements", announcementHandler.Set)
	admin.GET("/announcements", announcementHandler.List)
	admin.DELETE("/announcements/:id", announcementHandler.Delete)

	admin.POST("/uploads", uploadHandler.GenerateURL)
	admin.GET("/files/:id/url", uploadHandler.ResolveURL)

	return e
}
