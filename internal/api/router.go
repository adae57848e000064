package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/dhiraj-pandit/portfolio-api/docs"
	"github.com/dhiraj-pandit/portfolio-api/internal/api/handler"
	"github.com/dhiraj-pandit/portfolio-api/internal/api/middleware"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/service"
	mongodb "github.com/dhiraj-pandit/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/dhiraj-pandit/portfolio-api/internal/infrastructure/db/redis"
)

// Dependencies carries the externally constructed infrastructure the router
// wires handlers around.
type Dependencies struct {
	Mongo     *mongo.Database
	Redis     *redis.Client
	Mailer    ports.Mailer
	Storage   ports.MediaStorage
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.BodyLimit("10M"))
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Repositories ---
	adminRepo := mongodb.NewAdminRepository(deps.Mongo)
	projectRepo := mongodb.NewProjectRepository(deps.Mongo)
	certificateRepo := mongodb.NewCertificateRepository(deps.Mongo)
	experienceRepo := mongodb.NewExperienceRepository(deps.Mongo)
	skillRepo := mongodb.NewSkillRepository(deps.Mongo)
	profileRepo := mongodb.NewProfileRepository(deps.Mongo)
	contactRepo := mongodb.NewContactRepository(deps.Mongo)
	cache := redisdb.NewContentCache(deps.Redis)

	// --- Services ---
	tokens := service.NewTokenManager(deps.JWTSecret, 24*time.Hour)
	adminService := service.NewAdminService(adminRepo, tokens, projectRepo, certificateRepo, contactRepo)
	projectService := service.NewProjectService(projectRepo, cache, deps.Logger)
	certificateService := service.NewCertificateService(certificateRepo)
	experienceService := service.NewExperienceService(experienceRepo)
	skillService := service.NewSkillService(skillRepo, profileRepo, cache, deps.Logger)
	mediaService := service.NewMediaService(deps.Storage)
	profileService := service.NewProfileService(profileRepo, mediaService)
	contactService := service.NewContactService(contactRepo, deps.Mailer, deps.Logger)

	// --- Handlers ---
	adminHandler := handler.NewAdminHandler(adminService)
	projectHandler := handler.NewProjectHandler(projectService)
	certificateHandler := handler.NewCertificateHandler(certificateService, mediaService)
	experienceHandler := handler.NewExperienceHandler(experienceService, mediaService)
	skillHandler := handler.NewSkillHandler(skillService)
	profileHandler := handler.NewProfileHandler(profileService)
	contactHandler := handler.NewContactHandler(contactService)

	auth := middleware.Auth(tokens)

	// --- Health probes and operational endpoints (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Mongo, deps.Redis).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// --- Admin auth ---
	admin := api.Group("/admin")
	admin.POST("/login", adminHandler.Login)
	admin.POST("/register", adminHandler.Register)
	admin.GET("/verify", adminHandler.Verify, auth)
	admin.POST("/change-password", adminHandler.ChangePassword, auth)
	admin.GET("/dashboard", adminHandler.Dashboard, auth)

	// --- Projects ---
	projects := api.Group("/projects")
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.POST("", projectHandler.Create, auth)
	projects.PUT("/:id", projectHandler.Update, auth)
	projects.DELETE("/:id", projectHandler.Delete, auth)

	// --- Certificates ---
	certificates := api.Group("/certificates")
	certificates.GET("", certificateHandler.List)
	certificates.GET("/:id", certificateHandler.Get)
	certificates.POST("", certificateHandler.Create, auth)
	certificates.POST("/upload", certificateHandler.Upload, auth)
	certificates.PUT("/:id", certificateHandler.Update, auth)
	certificates.DELETE("/:id", certificateHandler.Delete, auth)

	// --- Experience ---
	experience := api.Group("/experience")
	experience.GET("", experienceHandler.List)
	experience.GET("/:id", experienceHandler.Get)
	experience.POST("", experienceHandler.Create, auth)
	experience.POST("/upload", experienceHandler.Upload, auth)
	experience.PUT("/:id", experienceHandler.Update, auth)
	experience.DELETE("/:id", experienceHandler.Delete, auth)

	// --- Skills catalog and profile skills ---
	skills := api.Group("/skills")
	skills.GET("", skillHandler.List)
	skills.GET("/categories", skillHandler.Categories)
	skills.GET("/profile", skillHandler.ProfileSkills)
	skills.POST("/profile", skillHandler.AddProfileSkills, auth)
	skills.PUT("/profile/:id", skillHandler.UpdateProfileSkillLevel, auth)
	skills.DELETE("/profile/:id", skillHandler.RemoveProfileSkill, auth)
	skills.POST("", skillHandler.Create, auth)
	skills.PUT("/:id", skillHandler.Update, auth)
	skills.DELETE("/:id", skillHandler.Delete, auth)

	// --- Profile ---
	profile := api.Group("/profile")
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update, auth)
	profile.POST("/upload", profileHandler.UploadImage, auth)
	profile.POST("/upload-cv", profileHandler.UploadCV, auth)

	// --- Contact form ---
	contact := api.Group("/contact")
	contact.POST("", contactHandler.Submit)
	contact.GET("", contactHandler.List, auth)
	contact.PUT("/:id/read", contactHandler.MarkRead, auth)

	return e
}
