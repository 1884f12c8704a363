package repository

import (
	"github.com/studyquest/backend/internal/model"
	"gorm.io/gorm"
)

type StudyPlanRepository interface {
	Create(entry *model.StudyPlanEntry) error
	FindByID(id uint) (*model.StudyPlanEntry, error)
	FindAllByUser(userID uint) ([]model.StudyPlanEntry, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type studyPlanRepository struct {
	db *gorm.DB
}

func NewStudyPlanRepository(db *gorm.DB) StudyPlanRepository {
	return &studyPlanRepository{db: db}
}

func (r *studyPlanRepository) Create(entry *model.StudyPlanEntry) error {
	return r.db.Create(entry).Error
}

func (r *studyPlanRepository) FindByID(id uint) (*model.StudyPlanEntry, error) {
	var entry model.StudyPlanEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *studyPlanRepository) FindAllByUser(userID uint) ([]model.StudyPlanEntry, error) {
	entries := make([]model.StudyPlanEntry, 0)
	if err := r.db.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *studyPlanRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&model.StudyPlanEntry{}).Where("id = ?", id).Updates(fields).Error
}

func (r *studyPlanRepository) Delete(id uint) error {
	return r.db.Delete(&model.StudyPlanEntry{}, id).Error
}
