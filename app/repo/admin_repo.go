package repo

import (
	"gorm.io/gorm"

	"github.com/TheQuantumSilver/ReceiptVakaGen/app/model"
)

type AdminRepository interface {
	FindByCode(code string) (*model.Admin, error)
}

type AdminRepo struct {
	DB *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{
		DB: db,
	}
}

func (r *AdminRepo) FindByCode(code string) (*model.Admin, error) {
	var admin model.Admin
	err := r.DB.Where("code = ?", code).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
