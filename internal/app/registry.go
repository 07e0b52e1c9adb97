package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ali44ashhad/contractor/internal/access"
	"github.com/ali44ashhad/contractor/internal/attendance"
	"github.com/ali44ashhad/contractor/internal/auth"
	"github.com/ali44ashhad/contractor/internal/document"
	"github.com/ali44ashhad/contractor/internal/messaging/kafka"
	"github.com/ali44ashhad/contractor/internal/middleware"
	"github.com/ali44ashhad/contractor/internal/project"
	"github.com/ali44ashhad/contractor/internal/rbac"
	"github.com/ali44ashhad/contractor/internal/report"
	"github.com/ali44ashhad/contractor/internal/request"
	"github.com/ali44ashhad/contractor/internal/team"
	"github.com/ali44ashhad/contractor/internal/update"
	"github.com/ali44ashhad/contractor/internal/user"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	accessRepo := access.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	projectRepo := project.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	requestRepo := request.NewRepository(gormDB)
	teamRepo := team.NewRepository(gormDB)
	updateRepo := update.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer(
		filepath.Join("internal", "rbac", "model.conf"),
		filepath.Join("internal", "rbac", "policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Storage collaborator ---
	storageDir := os.Getenv("DOCUMENT_STORAGE_DIR")
	if storageDir == "" {
		storageDir = "storage"
	}
	baseURL := os.Getenv("DOCUMENT_BASE_URL")
	if baseURL == "" {
		baseURL = "/api/v1/documents/files"
	}
	storage := document.NewDiskStorage(storageDir, baseURL)

	// --- Services ---
	accessService := access.NewService(accessRepo)
	attendanceService := attendance.NewService(attendanceRepo, accessService)
	authService := auth.NewService(authRepo)
	documentService := document.NewService(storage)
	projectService := project.NewService(projectRepo, userRepo, accessService)
	reportService := report.NewService(reportRepo, projectRepo, updateRepo, userRepo, accessService, rdb)
	requestService := request.NewService(db, requestRepo, projectRepo, outboxRepo, accessService)
	teamService := team.NewService(teamRepo, projectRepo, userRepo)
	updateService := update.NewService(db, updateRepo, projectRepo, teamRepo, attendanceRepo, outboxRepo, accessService, storage)
	userService := user.NewService(userRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService)
	authHandler := auth.NewHandler(authService)
	documentHandler := document.NewHandler(documentService)
	projectHandler := project.NewHandler(projectService)
	reportHandler := report.NewHandler(reportService)
	requestHandler := request.NewHandler(requestService)
	teamHandler := team.NewHandler(teamService)
	updateHandler := update.NewHandler(updateService, rdb)
	userHandler := user.NewHandler(userService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L()))

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		document.RegisterRoutes(api, documentHandler, rbacService)
		project.RegisterRoutes(api, projectHandler, rbacService)
		report.RegisterRoutes(api, reportHandler, rbacService)
		request.RegisterRoutes(api, requestHandler, rbacService)
		team.RegisterRoutes(api, teamHandler, rbacService)
		update.RegisterRoutes(api, updateHandler, rbacService, rdb)
		user.RegisterRoutes(api, userHandler, rbacService)
	}

	return nil
}
