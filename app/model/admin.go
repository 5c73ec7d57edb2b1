package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Admin is a read-only reference entity. Admins authenticate with a
// shared code and their name is stamped into confirmed_by.
type Admin struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `json:"name"`
	Code      string    `gorm:"uniqueIndex" json:"-"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

type LoginRequest struct {
	AdminCode string `json:"adminCode" validate:"required"`
}

type JWTClaims struct {
	AdminName string `json:"adminName"`
	AdminCode string `json:"adminCode"`
	jwt.RegisteredClaims
}
