package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/TheQuantumSilver/ReceiptVakaGen/app/model"
	"github.com/TheQuantumSilver/ReceiptVakaGen/app/repo"
	"github.com/TheQuantumSilver/ReceiptVakaGen/helper"
)

type AuthService struct {
	repo      repo.AdminRepository
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthService(repo repo.AdminRepository, jwtSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// /api/login
func (s *AuthService) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Message: "Admin code is required.",
		})
	}

	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Message: "Admin code is required.",
		})
	}

	admin, err := s.repo.FindByCode(req.AdminCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Message: "Invalid admin code.",
			})
		}
		s.logger.Error("admin lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Message: "An unexpected error occurred during login.",
		})
	}

	token, err := helper.GenerateToken(*admin, s.jwtSecret)
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Message: "An unexpected error occurred during login.",
		})
	}

	s.logger.Info("admin logged in", zap.String("admin", admin.Name))

	return c.JSON(model.LoginResponse{
		Token:     token,
		AdminName: admin.Name,
	})
}
