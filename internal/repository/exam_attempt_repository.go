package repository

import (
	"github.com/studyquest/backend/internal/model"
	"gorm.io/gorm"
)

type ExamAttemptRepository interface {
	Create(attempt *model.ExamAttempt) error
	FindAllByUser(userID uint) ([]model.ExamAttempt, error)
}

type examAttemptRepository struct {
	db *gorm.DB
}

func NewExamAttemptRepository(db *gorm.DB) ExamAttemptRepository {
	return &examAttemptRepository{db: db}
}

func (r *examAttemptRepository) Create(attempt *model.ExamAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *examAttemptRepository) FindAllByUser(userID uint) ([]model.ExamAttempt, error) {
	attempts := make([]model.ExamAttempt, 0)
	if err := r.db.Where("user_id = ?", userID).Order("taken_at desc").Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}
