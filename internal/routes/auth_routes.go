package routes

import (
	"storecare-backend/internal/handler"
	"storecare-backend/internal/repository"
	"storecare-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	svc := usecase.NewUserService(userRepo)
	hdl := handler.NewAuthHandler(svc)

	api := app.Group("/api/auth")
	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
}
