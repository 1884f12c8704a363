package repository

import (
	"github.com/studyquest/backend/internal/model"
	"gorm.io/gorm"
)

type MaterialRepository interface {
	Create(material *model.Material) error
	FindAll() ([]model.Material, error)
	FindBySubject(subject string) ([]model.Material, error)
	FindByID(id uint) (*model.Material, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error

	FindProgress(userID, materialID uint) (*model.MaterialProgress, error)
	CreateProgress(progress *model.MaterialProgress) error
	SaveProgress(progress *model.MaterialProgress) error
	FindProgressByUser(userID uint) ([]struct {
		MaterialID uint
		Completed  bool
		Subject    string
	}, error)
}

type materialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(material *model.Material) error {
	return r.db.Create(material).Error
}

func (r *materialRepository) FindAll() ([]model.Material, error) {
	materials := make([]model.Material, 0)
	if err := r.db.Order("created_at desc").Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *materialRepository) FindBySubject(subject string) ([]model.Material, error) {
	materials := make([]model.Material, 0)
	if err := r.db.Where("subject = ?", subject).Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *materialRepository) FindByID(id uint) (*model.Material, error) {
	var material model.Material
	if err := r.db.First(&material, id).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *materialRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&model.Material{}).Where("id = ?", id).Updates(fields).Error
}

func (r *materialRepository) Delete(id uint) error {
	return r.db.Delete(&model.Material{}, id).Error
}

func (r *materialRepository) FindProgress(userID, materialID uint) (*model.MaterialProgress, error) {
	var progress model.MaterialProgress
	err := r.db.Where("user_id = ? AND material_id = ?", userID, materialID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *materialRepository) CreateProgress(progress *model.MaterialProgress) error {
	return r.db.Create(progress).Error
}

func (r *materialRepository) SaveProgress(progress *model.MaterialProgress) error {
	return r.db.Save(progress).Error
}

func (r *materialRepository) FindProgressByUser(userID uint) ([]struct {
	MaterialID uint
	Completed  bool
	Subject    string
}, error) {
	var results []struct {
		MaterialID uint
		Completed  bool
		Subject    string
	}
	err := r.db.Model(&model.MaterialProgress{}).
		Select("material_progresses.material_id AS material_id, material_progresses.completed AS completed, materials.subject AS subject").
		Joins("LEFT JOIN materials ON materials.id = material_progresses.material_id").
		Where("material_progresses.user_id = ?", userID).
		Scan(&results).Error
	return results, err
}
