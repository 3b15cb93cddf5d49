package routes

import (
	"storecare-backend/internal/handler"
	"storecare-backend/internal/middleware"
	"storecare-backend/internal/model"
	"storecare-backend/internal/repository"
	"storecare-backend/internal/timeutil"
	"storecare-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBusinessRoutes(app *fiber.App, db *gorm.DB, clock timeutil.Clock) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	checklistRepo := repository.NewChecklistRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)

	checklistSvc := usecase.NewChecklistService(clock, checklistRepo, attendanceRepo, storeRepo)
	reportSvc := usecase.NewReportService(clock, companyRepo, storeRepo, attendanceRepo, checklistRepo, userRepo)

	checklistHdl := handler.NewChecklistHandler(checklistSvc)
	reportHdl := handler.NewReportHandler(reportSvc, clock)

	api := app.Group("/api/business", middleware.Auth,
		middleware.Role(model.RoleBusinessOwner, model.RoleStoreManager, model.RolePlatformAdmin))
	api.Post("/checklists/:id/review", checklistHdl.Review)
	api.Get("/reports/daily", reportHdl.Daily)
	api.Get("/reports/monthly.xlsx", reportHdl.MonthlyXLSX)
}
