package model

import (
	"time"

	"github.com/google/uuid"
)

type Petitioner struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	PetitionerNumber int        `json:"petitioner_number"`
	PetitionerGroup  *int       `json:"petitioner_group"`
	Department       string     `json:"department"`
	Email            string     `json:"email"`
	PaymentConfirmed bool       `json:"payment_confirmed"`
	PaymentID        *string    `json:"payment_id"`
	ConfirmedBy      *string    `json:"confirmed_by"`
	ConfirmedAt      *time.Time `json:"confirmed_at"`
}

type ConfirmRequest struct {
	PetitionerID string `json:"petitionerId" validate:"required"`
}

// CaseMeta is the display metadata derived from a petitioner's group:
// the amount owed, the writ petition case number, and which collection
// phase the payment belongs to.
type CaseMeta struct {
	AmountDisplay string
	CaseNumber    string
	Phase         string
}

// CaseMetaForGroup maps a petitioner group to its case metadata. The
// second return value is false when the group is unset or unrecognised,
// in which case a generic registration fallback is returned.
func CaseMetaForGroup(group *int) (CaseMeta, bool) {
	if group != nil {
		switch *group {
		case 1:
			return CaseMeta{AmountDisplay: "₹1950", CaseNumber: "WPA3028/2024", Phase: "fourth phase collection"}, true
		case 2:
			return CaseMeta{AmountDisplay: "₹1950", CaseNumber: "WPA13054/2024", Phase: "fourth phase collection"}, true
		case 3:
			return CaseMeta{AmountDisplay: "₹1050", CaseNumber: "WPA26400/2024", Phase: "third phase collection"}, true
		}
	}
	return CaseMeta{AmountDisplay: "Amount not specified", CaseNumber: "—", Phase: "registration"}, false
}
