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

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, clock timeutil.Clock) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	svc := usecase.NewAttendanceService(clock, attendanceRepo, storeRepo)
	hdl := handler.NewAttendanceHandler(svc)

	api := app.Group("/api/attendance", middleware.Auth)
	api.Post("/clock-in", hdl.ClockIn)
	api.Post("/clock-out", hdl.ClockOut)
	api.Get("/today", hdl.Today)
	api.Get("/history", hdl.History)

	// Administrative cancellation of a mistaken clock-in.
	business := app.Group("/api/business", middleware.Auth,
		middleware.Role(model.RoleBusinessOwner, model.RolePlatformAdmin))
	business.Delete("/attendances/:id", hdl.Cancel)
}
