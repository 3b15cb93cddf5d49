package main

import (
	"log"

	"storecare-backend/config"
	"storecare-backend/internal/notifier"
	"storecare-backend/internal/repository"
	"storecare-backend/internal/routes"
	"storecare-backend/internal/scheduler"
	"storecare-backend/internal/timeutil"
	"storecare-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment variables.")
	}

	config.ConnectDB()
	db := config.DB
	clock := timeutil.SystemClock{}

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New())

	// Selfies and checklist photos are served from local uploads in dev.
	app.Static("/uploads", "./uploads")

	routes.SetupAuthRoutes(app, db)
	routes.SetupAttendanceRoutes(app, db, clock)
	routes.SetupStaffRoutes(app, db, clock)
	routes.SetupBusinessRoutes(app, db, clock)

	// Daily attendance reports at 06:00 and 13:00 KST.
	reportSvc := usecase.NewReportService(clock,
		repository.NewCompanyRepository(db),
		repository.NewStoreRepository(db),
		repository.NewAttendanceRepository(db),
		repository.NewChecklistRepository(db),
		repository.NewUserRepository(db),
	)
	reporter := scheduler.NewDailyReporter(reportSvc, notifier.NewMailerFromEnv(), clock)
	if err := reporter.Start(); err != nil {
		log.Fatalf("Failed to start report scheduler: %v", err)
	}
	defer reporter.Stop()

	port := config.GetEnv("PORT", "3000")
	log.Printf("Server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
