package repo

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/TheQuantumSilver/ReceiptVakaGen/app/model"
)

// ErrNotConfirmable is returned when the confirmation guard matched no
// row: the petitioner does not exist, or payment was already confirmed.
// Callers must not distinguish the two.
var ErrNotConfirmable = errors.New("petitioner not found or payment already confirmed")

type PetitionerRepository interface {
	ConfirmPayment(id uuid.UUID, paymentID, confirmedBy string, confirmedAt time.Time) (*model.Petitioner, error)
	Search(query string) ([]model.Petitioner, error)
}

type PetitionerRepo struct {
	DB *sql.DB
}

func NewPetitionerRepo(db *sql.DB) *PetitionerRepo {
	return &PetitionerRepo{
		DB: db,
	}
}

const petitionerColumns = `id, name, petitioner_number, petitioner_group, department, email, payment_confirmed, payment_id, confirmed_by, confirmed_at`

// ConfirmPayment performs the guarded write-once transition. The
// payment_confirmed = false predicate is the sole concurrency control:
// under concurrent calls the row-level serialization of UPDATE lets
// exactly one of them through.
func (r *PetitionerRepo) ConfirmPayment(id uuid.UUID, paymentID, confirmedBy string, confirmedAt time.Time) (*model.Petitioner, error) {
	query := `
		UPDATE petitioners
		SET payment_confirmed = true, payment_id = $1, confirmed_by = $2, confirmed_at = $3
		WHERE id = $4 AND payment_confirmed = false
		RETURNING ` + petitionerColumns

	petitioner, err := scanPetitioner(r.DB.QueryRow(query, paymentID, confirmedBy, confirmedAt, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotConfirmable
		}
		return nil, fmt.Errorf("failed to confirm payment: %w", err)
	}
	return petitioner, nil
}

// Search matches petitioners by case-insensitive name substring, or by
// exact serial number when the query parses as an integer. Results are
// ordered by name.
func (r *PetitionerRepo) Search(query string) ([]model.Petitioner, error) {
	stmt := `SELECT ` + petitionerColumns + ` FROM petitioners WHERE name ILIKE $1`
	args := []interface{}{"%" + query + "%"}

	if serial, err := strconv.Atoi(query); err == nil {
		stmt += ` OR petitioner_number = $2`
		args = append(args, serial)
	}
	stmt += ` ORDER BY name ASC`

	rows, err := r.DB.Query(stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search petitioners: %w", err)
	}
	defer rows.Close()

	petitioners := []model.Petitioner{}
	for rows.Next() {
		p, err := scanPetitioner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan petitioner: %w", err)
		}
		petitioners = append(petitioners, *p)
	}
	return petitioners, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPetitioner(row rowScanner) (*model.Petitioner, error) {
	var p model.Petitioner
	var group sql.NullInt64
	var paymentID, confirmedBy sql.NullString
	var confirmedAt sql.NullTime

	if err := row.Scan(
		&p.ID, &p.Name, &p.PetitionerNumber, &group, &p.Department, &p.Email,
		&p.PaymentConfirmed, &paymentID, &confirmedBy, &confirmedAt,
	); err != nil {
		return nil, err
	}

	if group.Valid {
		g := int(group.Int64)
		p.PetitionerGroup = &g
	}
	if paymentID.Valid {
		p.PaymentID = &paymentID.String
	}
	if confirmedBy.Valid {
		p.ConfirmedBy = &confirmedBy.String
	}
	if confirmedAt.Valid {
		p.ConfirmedAt = &confirmedAt.Time
	}

	return &p, nil
}
