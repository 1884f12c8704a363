package repository

import (
	"github.com/studyquest/backend/internal/model"
	"gorm.io/gorm"
)

type EssayRepository interface {
	Create(essay *model.Essay) error
	FindByID(id uint) (*model.Essay, error)
	FindAllByUser(userID uint) ([]model.Essay, error)
	Update(essay *model.Essay) error
}

type essayRepository struct {
	db *gorm.DB
}

func NewEssayRepository(db *gorm.DB) EssayRepository {
	return &essayRepository{db: db}
}

func (r *essayRepository) Create(essay *model.Essay) error {
	return r.db.Create(essay).Error
}

func (r *essayRepository) FindByID(id uint) (*model.Essay, error) {
	var essay model.Essay
	if err := r.db.First(&essay, id).Error; err != nil {
		return nil, err
	}
	return &essay, nil
}

func (r *essayRepository) FindAllByUser(userID uint) ([]model.Essay, error) {
	essays := make([]model.Essay, 0)
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&essays).Error; err != nil {
		return nil, err
	}
	return essays, nil
}

func (r *essayRepository) Update(essay *model.Essay) error {
	return r.db.Save(essay).Error
}
