package repository

import (
	"time"

	"github.com/studyquest/backend/internal/model"
	"gorm.io/gorm"
)

type ChallengeRepository interface {
	Create(challenge *model.Challenge) error
	FindAll() ([]model.Challenge, error)
	FindByID(id uint) (*model.Challenge, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error

	FindProgress(userID, challengeID uint) (*model.ChallengeProgress, error)
	CreateProgress(progress *model.ChallengeProgress) error
	SaveProgress(progress *model.ChallengeProgress) error
	MarkCompleted(userID, challengeID uint) error
	FindAllWithProgress(userID uint) ([]struct {
		model.Challenge
		Progress    *float64
		Completed   *bool
		CompletedAt *time.Time
	}, error)
}

type challengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) Create(challenge *model.Challenge) error {
	return r.db.Create(challenge).Error
}

func (r *challengeRepository) FindAll() ([]model.Challenge, error) {
	challenges := make([]model.Challenge, 0)
	if err := r.db.Order("created_at desc").Find(&challenges).Error; err != nil {
		return nil, err
	}
	return challenges, nil
}

func (r *challengeRepository) FindByID(id uint) (*model.Challenge, error) {
	var challenge model.Challenge
	if err := r.db.First(&challenge, id).Error; err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (r *challengeRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&model.Challenge{}).Where("id = ?", id).Updates(fields).Error
}

func (r *challengeRepository) Delete(id uint) error {
	return r.db.Delete(&model.Challenge{}, id).Error
}

func (r *challengeRepository) FindProgress(userID, challengeID uint) (*model.ChallengeProgress, error) {
	var progress model.ChallengeProgress
	err := r.db.Where("user_id = ? AND challenge_id = ?", userID, challengeID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *challengeRepository) CreateProgress(progress *model.ChallengeProgress) error {
	return r.db.Create(progress).Error
}

func (r *challengeRepository) SaveProgress(progress *model.ChallengeProgress) error {
	return r.db.Save(progress).Error
}

func (r *challengeRepository) MarkCompleted(userID, challengeID uint) error {
	now := time.Now()
	return r.db.Model(&model.ChallengeProgress{}).
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		Updates(map[string]interface{}{"completed": true, "completed_at": &now}).Error
}

func (r *challengeRepository) FindAllWithProgress(userID uint) ([]struct {
	model.Challenge
	Progress    *float64
	Completed   *bool
	CompletedAt *time.Time
}, error) {
	var results []struct {
		model.Challenge
		Progress    *float64
		Completed   *bool
		CompletedAt *time.Time
	}
	err := r.db.Model(&model.Challenge{}).
		Select("challenges.*, cp.progress AS progress, cp.completed AS completed, cp.completed_at AS completed_at").
		Joins("LEFT JOIN challenge_progresses cp ON cp.challenge_id = challenges.id AND cp.user_id = ?", userID).
		Scan(&results).Error
	return results, err
}
