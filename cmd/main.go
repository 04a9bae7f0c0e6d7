package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"estatehub/internal/caching"
	"estatehub/internal/config"
	"estatehub/internal/handlers"
	"estatehub/internal/jobs/background"
	"estatehub/internal/middleware"
	"estatehub/internal/repositories"
	"estatehub/internal/services"
	"estatehub/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	storageSvc, err := services.NewMinioStorage(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer cacheSvc.Close()

	// Repositories
	sellerRepo := repositories.NewSellerRepo(pool)
	projectRepo := repositories.NewProjectRepo(pool)
	blockRepo := repositories.NewBlockRepo(pool)
	unitTypeRepo := repositories.NewUnitTypeRepo(pool)
	unitRepo := repositories.NewUnitRepo(pool)
	complaintRepo := repositories.NewComplaintRepo(pool)
	noticeRepo := repositories.NewNoticeRepo(pool)

	// Services
	authorizer := services.NewProjectAuthorizer(sellerRepo, projectRepo)
	provisioningSvc := services.NewProvisioningService(pool, projectRepo, blockRepo, unitTypeRepo, unitRepo, authorizer)
	listingSvc := services.NewUnitListingService(projectRepo, unitRepo, authorizer)
	sellerSvc := services.NewSellerService(sellerRepo, cacheSvc)
	projectSvc := services.NewProjectService(projectRepo, sellerRepo, cacheSvc)
	complaintSvc := services.NewComplaintService(complaintRepo, projectRepo, storageSvc)
	noticeSvc := services.NewNoticeService(noticeRepo, projectRepo, storageSvc)

	// Background jobs
	scheduler, err := background.NewJobScheduler(sellerRepo, noticeRepo, projectRepo, cacheSvc)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("Failed to stop scheduler: %v", err)
		}
	}()

	// Handlers
	provisioningHandlers := handlers.NewProvisioningHandlers(provisioningSvc)
	unitHandlers := handlers.NewUnitHandlers(listingSvc)
	sellerHandlers := handlers.NewSellerHandlers(sellerSvc)
	projectHandlers := handlers.NewProjectHandlers(projectSvc)
	complaintHandlers := handlers.NewComplaintHandlers(complaintSvc)
	noticeHandlers := handlers.NewNoticeHandlers(noticeSvc)
	healthHandlers := handlers.NewHealthHandlers(pool)

	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())

	e.GET("/health", healthHandlers.Health)

	api := e.Group("/api", middleware.JWTMiddleware(cfg.JWTSecret))

	api.POST("/sellers", sellerHandlers.CreateSeller)
	api.GET("/sellers", sellerHandlers.ListSellers)
	api.GET("/sellers/with-projects", sellerHandlers.ListSellersWithProjects)
	api.GET("/sellers/:id", sellerHandlers.GetSeller)
	api.PUT("/sellers/:id", sellerHandlers.UpdateSeller)
	api.DELETE("/sellers/:id", sellerHandlers.DeleteSeller)

	api.POST("/projects", projectHandlers.CreateProject)
	api.GET("/projects", projectHandlers.ListProjects)
	api.GET("/projects/:id", projectHandlers.GetProject)
	api.PUT("/projects/:id", projectHandlers.UpdateProject)
	api.DELETE("/projects/:id", projectHandlers.DeleteProject)

	api.POST("/projects/:id/units/bulk", provisioningHandlers.BulkCreateUnits)
	api.GET("/projects/:id/units", unitHandlers.ListUnits)

	api.POST("/projects/:id/complaints", complaintHandlers.CreateComplaint)
	api.GET("/projects/:id/complaints", complaintHandlers.ListComplaints)
	api.GET("/projects/:id/complaints/:complaintId", complaintHandlers.GetComplaint)
	api.PUT("/projects/:id/complaints/:complaintId/status", complaintHandlers.UpdateComplaintStatus)
	api.DELETE("/projects/:id/complaints/:complaintId", complaintHandlers.DeleteComplaint)
	api.POST("/projects/:id/complaints/:complaintId/photo", complaintHandlers.UploadPhoto)
	api.GET("/projects/:id/complaints/:complaintId/photo", complaintHandlers.GetPhotoURL)

	api.POST("/projects/:id/notices", noticeHandlers.CreateNotice)
	api.GET("/projects/:id/notices", noticeHandlers.ListNotices)
	api.GET("/projects/:id/notices/:noticeId", noticeHandlers.GetNotice)
	api.DELETE("/projects/:id/notices/:noticeId", noticeHandlers.DeleteNotice)
	api.POST("/projects/:id/notices/:noticeId/attachment", noticeHandlers.UploadAttachment)
	api.GET("/projects/:id/notices/:noticeId/attachment", noticeHandlers.GetAttachmentURL)

	log.Fatal(e.Start(":" + cfg.Port))
}
