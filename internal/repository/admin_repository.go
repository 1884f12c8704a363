package repository

import (
	"github.com/studyquest/backend/internal/model"
	"gorm.io/gorm"
)

type AdminRepository interface {
	WithTx(tx *gorm.DB) AdminRepository
	Create(admin *model.Admin) error
	FindAll() ([]model.Admin, error)
	// ExistsByUserEmail reports whether any admin row references the email.
	// The user edit path uses this as its referential-integrity guard.
	ExistsByUserEmail(email string) (bool, error)
	Delete(userID uint) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) WithTx(tx *gorm.DB) AdminRepository {
	return &adminRepository{db: tx}
}

func (r *adminRepository) Create(admin *model.Admin) error {
	return r.db.Create(admin).Error
}

func (r *adminRepository) FindAll() ([]model.Admin, error) {
	var admins []model.Admin
	if err := r.db.Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *adminRepository) ExistsByUserEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&model.Admin{}).Where("user_email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *adminRepository) Delete(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Admin{}).Error
}
