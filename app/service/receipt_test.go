package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/TheQuantumSilver/ReceiptVakaGen/app/model"
)

func TestRenderReceipt(t *testing.T) {
	group := 1
	paymentID := "A1B2C3D4E5"
	confirmedBy := "Asha Rao"
	confirmedAt := time.Date(2024, 7, 15, 12, 30, 5, 0, time.UTC)

	p := &model.Petitioner{
		ID:               uuid.New(),
		Name:             "Anjali Sen",
		PetitionerNumber: 42,
		PetitionerGroup:  &group,
		Department:       "Education",
		Email:            "anjali@example.com",
		PaymentConfirmed: true,
		PaymentID:        &paymentID,
		ConfirmedBy:      &confirmedBy,
		ConfirmedAt:      &confirmedAt,
	}

	meta, known := model.CaseMetaForGroup(p.PetitionerGroup)
	if !known {
		t.Fatal("expected group 1 to be known")
	}

	body, err := renderReceipt(p, meta, confirmedBy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Dear Anjali Sen,",
		"Your payment for fourth phase collection has been successfully confirmed.",
		"<strong>Petitioner Serial No.:</strong> 42",
		"<strong>Case:</strong> WPA3028/2024",
		"<strong>Amount:</strong> ₹1950",
		"<strong>Payment ID:</strong> A1B2C3D4E5",
		"<strong>Confirmed by:</strong> Asha Rao",
		// 12:30:05 UTC is 18:00:05 in Asia/Kolkata.
		"15/7/2024, 6:00:05 pm",
		"Core 0 Legal Team",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected receipt to contain %q", want)
		}
	}
}

func TestRenderReceiptFallback(t *testing.T) {
	paymentID := "A1B2C3D4E5"
	confirmedAt := time.Date(2024, 7, 15, 12, 30, 5, 0, time.UTC)

	p := &model.Petitioner{
		ID:               uuid.New(),
		Name:             "Anjali Sen",
		PetitionerNumber: 42,
		Department:       "Education",
		Email:            "anjali@example.com",
		PaymentConfirmed: true,
		PaymentID:        &paymentID,
		ConfirmedAt:      &confirmedAt,
	}

	meta, _ := model.CaseMetaForGroup(p.PetitionerGroup)

	body, err := renderReceipt(p, meta, "Asha Rao")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(body, "Your payment for registration has been successfully confirmed.") {
		t.Error("expected registration fallback phrasing")
	}
	if !strings.Contains(body, "Amount not specified") {
		t.Error("expected fallback amount")
	}
}
