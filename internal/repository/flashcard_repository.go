package repository

import (
	"time"

	"github.com/studyquest/backend/internal/model"
	"gorm.io/gorm"
)

type FlashcardRepository interface {
	Create(card *model.Flashcard) error
	FindByID(id uint) (*model.Flashcard, error)
	FindAllByUser(userID uint) ([]model.Flashcard, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
	// CountDue counts cards whose next review is at or before the given time.
	CountDue(now time.Time) (int64, error)
}

type flashcardRepository struct {
	db *gorm.DB
}

func NewFlashcardRepository(db *gorm.DB) FlashcardRepository {
	return &flashcardRepository{db: db}
}

func (r *flashcardRepository) Create(card *model.Flashcard) error {
	return r.db.Create(card).Error
}

func (r *flashcardRepository) FindByID(id uint) (*model.Flashcard, error) {
	var card model.Flashcard
	if err := r.db.First(&card, id).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *flashcardRepository) FindAllByUser(userID uint) ([]model.Flashcard, error) {
	cards := make([]model.Flashcard, 0)
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *flashcardRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&model.Flashcard{}).Where("id = ?", id).Updates(fields).Error
}

func (r *flashcardRepository) Delete(id uint) error {
	return r.db.Delete(&model.Flashcard{}, id).Error
}

func (r *flashcardRepository) CountDue(now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Flashcard{}).
		Where("next_review IS NOT NULL AND next_review <= ?", now).
		Count(&count).Error
	return count, err
}
