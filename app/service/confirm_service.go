package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TheQuantumSilver/ReceiptVakaGen/app/model"
	"github.com/TheQuantumSilver/ReceiptVakaGen/app/repo"
	"github.com/TheQuantumSilver/ReceiptVakaGen/helper"
	"github.com/TheQuantumSilver/ReceiptVakaGen/mailer"
)

const conflictMessage = "Payment already confirmed or petitioner not found."

type ConfirmService struct {
	repo   repo.PetitionerRepository
	mail   mailer.Sender
	logger *zap.Logger
}

func NewConfirmService(repo repo.PetitionerRepository, mail mailer.Sender, logger *zap.Logger) *ConfirmService {
	return &ConfirmService{
		repo:   repo,
		mail:   mail,
		logger: logger,
	}
}

// /api/confirm
//
// Confirm records the payment with a single guarded update, derives case
// metadata from the petitioner group, mails the receipt and responds with
// the updated record. A mail failure after the update committed is still
// reported to the caller as a server error.
func (s *ConfirmService) Confirm(c *fiber.Ctx) error {
	var req model.ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Message: "Petitioner ID is required.",
		})
	}

	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Message: "Petitioner ID is required.",
		})
	}

	adminName, _ := c.Locals("adminName").(string)

	id, err := uuid.Parse(req.PetitionerID)
	if err != nil {
		// Malformed ids get the same answer as unknown ones.
		return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
			Message: conflictMessage,
		})
	}

	paymentID, err := helper.GeneratePaymentID()
	if err != nil {
		s.logger.Error("payment id generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Message: "Error confirming payment.",
		})
	}

	petitioner, err := s.repo.ConfirmPayment(id, paymentID, adminName, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repo.ErrNotConfirmable) {
			return c.Status(fiber.StatusConflict).JSON(model.ErrorResponse{
				Message: conflictMessage,
			})
		}
		s.logger.Error("confirmation update failed",
			zap.Error(err),
			zap.String("petitioner_id", req.PetitionerID))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Message: "Error confirming payment.",
		})
	}

	meta, known := model.CaseMetaForGroup(petitioner.PetitionerGroup)
	if !known {
		s.logger.Warn("petitioner has unhandled group",
			zap.String("petitioner_id", petitioner.ID.String()),
			zap.Any("group", petitioner.PetitionerGroup))
	}

	body, err := renderReceipt(petitioner, meta, adminName)
	if err != nil {
		s.logger.Error("receipt rendering failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Message: "An unexpected error occurred during confirmation.",
		})
	}

	subject := fmt.Sprintf("Payment Confirmed - %s", petitioner.Name)
	if err := s.mail.Send(petitioner.Email, subject, body); err != nil {
		// The row is already committed at this point; the caller still
		// sees a failure. See DESIGN.md.
		s.logger.Error("receipt email failed after commit",
			zap.Error(err),
			zap.String("petitioner_id", petitioner.ID.String()),
			zap.String("payment_id", paymentID))
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Message: "An unexpected error occurred during confirmation.",
		})
	}

	s.logger.Info("payment confirmed",
		zap.String("petitioner", petitioner.Name),
		zap.String("payment_id", paymentID),
		zap.String("confirmed_by", adminName))

	return c.JSON(model.ConfirmResponse{
		Message:    fmt.Sprintf("Payment confirmed and email sent successfully. Amount: %s.", meta.AmountDisplay),
		Petitioner: *petitioner,
	})
}
