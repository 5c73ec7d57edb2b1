package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/TheQuantumSilver/ReceiptVakaGen/app/model"
	"github.com/TheQuantumSilver/ReceiptVakaGen/app/repo"
)

type PetitionerService struct {
	repo   repo.PetitionerRepository
	logger *zap.Logger
}

func NewPetitionerService(repo repo.PetitionerRepository, logger *zap.Logger) *PetitionerService {
	return &PetitionerService{
		repo:   repo,
		logger: logger,
	}
}

// /api/search
func (s *PetitionerService) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Message: "Search query (q) is required.",
		})
	}

	petitioners, err := s.repo.Search(query)
	if err != nil {
		s.logger.Error("petitioner search failed",
			zap.Error(err),
			zap.String("query", query))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Message: "Error performing search.",
		})
	}

	return c.JSON(petitioners)
}
