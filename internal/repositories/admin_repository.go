package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"recruitpro_backend/internal/models"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository interface {
	FindByEmail(email string) (*models.Admin, error)
	Create(admin *models.Admin) error
	UpdatePassword(email, passwordHash string) error
}

type AdminRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepositoryImpl) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *AdminRepositoryImpl) UpdatePassword(email, passwordHash string) error {
	result := r.db.Model(&models.Admin{}).Where("email = ?", email).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}
