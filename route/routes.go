package route

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/TheQuantumSilver/ReceiptVakaGen/app/model"
	"github.com/TheQuantumSilver/ReceiptVakaGen/app/repo"
	"github.com/TheQuantumSilver/ReceiptVakaGen/app/service"
	"github.com/TheQuantumSilver/ReceiptVakaGen/config"
	"github.com/TheQuantumSilver/ReceiptVakaGen/mailer"
	"github.com/TheQuantumSilver/ReceiptVakaGen/middleware"
)

func SetupRoutes(app *fiber.App, cfg *config.Config, gormDB *gorm.DB, sqlDB *sql.DB, sender mailer.Sender, logger *zap.Logger) {
	adminRepo := repo.NewAdminRepo(gormDB)
	petitionerRepo := repo.NewPetitionerRepo(sqlDB)

	authService := service.NewAuthService(adminRepo, cfg.JWTSecret, logger)
	confirmService := service.NewConfirmService(petitionerRepo, sender, logger)
	petitionerService := service.NewPetitionerService(petitionerRepo, logger)

	api := app.Group("/api")

	api.Post("/login", authService.Login)

	protected := api.Group("", middleware.AuthRequired(cfg.JWTSecret))

	protected.Post("/confirm", confirmService.Confirm)
	protected.Get("/search", petitionerService.Search)

	app.Static("/", "./public")

	// Registered last so it only catches unmatched routes.
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusNotFound).JSON(model.ErrorResponse{
				Message: "API endpoint not found.",
			})
		}
		return c.Status(fiber.StatusNotFound).SendString("Page not found.")
	})
}
