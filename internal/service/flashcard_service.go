package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"gorm.io/gorm"
)

const (
	defaultRepetitions = 4
	defaultDifficulty  = 2.5
	reviewWindowDays   = 30
)

type FlashcardService interface {
	CreateFlashcard(req dto.FlashcardCreateDTO) (*dto.FlashcardResponseDTO, error)
	GetFlashcard(id uint) (*dto.FlashcardResponseDTO, error)
	GetFlashcardsByUser(userID uint) ([]dto.FlashcardResponseDTO, error)
	UpdateFlashcard(id uint, req dto.FlashcardUpdateDTO) (*dto.FlashcardResponseDTO, error)
	DeleteFlashcard(id uint) error
	ReviewFlashcard(id uint) (*dto.ReviewResultDTO, error)
}

type flashcardService struct {
	repo repository.FlashcardRepository
}

func NewFlashcardService(repo repository.FlashcardRepository) FlashcardService {
	return &flashcardService{repo: repo}
}

func (s *flashcardService) CreateFlashcard(req dto.FlashcardCreateDTO) (*dto.FlashcardResponseDTO, error) {
	card := model.Flashcard{
		UserID:      req.UserID,
		Question:    req.Question,
		Answer:      req.Answer,
		Subject:     req.Subject,
		Repetitions: defaultRepetitions,
		Difficulty:  defaultDifficulty,
	}
	if req.Repetitions != nil {
		card.Repetitions = *req.Repetitions
	}
	if req.Difficulty != nil {
		card.Difficulty = *req.Difficulty
	}

	if err := s.repo.Create(&card); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Msg("Failed to create flashcard")
		return nil, fmt.Errorf("failed to create flashcard: %w", err)
	}
	var resp dto.FlashcardResponseDTO
	copier.Copy(&resp, &card)
	return &resp, nil
}

func (s *flashcardService) GetFlashcard(id uint) (*dto.FlashcardResponseDTO, error) {
	card, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var resp dto.FlashcardResponseDTO
	copier.Copy(&resp, card)
	return &resp, nil
}

func (s *flashcardService) GetFlashcardsByUser(userID uint) ([]dto.FlashcardResponseDTO, error) {
	cards, err := s.repo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.FlashcardResponseDTO, 0, len(cards))
	copier.Copy(&resp, &cards)
	return resp, nil
}

func (s *flashcardService) UpdateFlashcard(id uint, req dto.FlashcardUpdateDTO) (*dto.FlashcardResponseDTO, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Question != nil {
		fields["question"] = *req.Question
	}
	if req.Answer != nil {
		fields["answer"] = *req.Answer
	}
	if req.Subject != nil {
		fields["subject"] = *req.Subject
	}
	if req.NextReview != nil {
		fields["next_review"] = *req.NextReview
	}
	if req.Repetitions != nil {
		fields["repetitions"] = *req.Repetitions
	}
	if req.Difficulty != nil {
		fields["difficulty"] = *req.Difficulty
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("failed to update flashcard: %w", err)
	}
	return s.GetFlashcard(id)
}

func (s *flashcardService) DeleteFlashcard(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}

// ReviewFlashcard records a review now and schedules the next one. The
// interval divides a 30-day window by the repetition count, so more
// repetitions mean shorter gaps.
func (s *flashcardService) ReviewFlashcard(id uint) (*dto.ReviewResultDTO, error) {
	card, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	days := nextReviewInterval(card.Repetitions)
	next := now.AddDate(0, 0, days)

	fields := map[string]interface{}{
		"last_review": now,
		"next_review": next,
	}
	if err := s.repo.UpdateFields(id, fields); err != nil {
		log.Error().Err(err).Uint("flashcardID", id).Msg("Failed to persist review")
		return nil, fmt.Errorf("failed to persist review: %w", err)
	}

	return &dto.ReviewResultDTO{NextReviewDate: next, DaysUntilNext: days}, nil
}

// nextReviewInterval computes the days until the next review for a given
// repetition count. Non-positive counts fall back to the default.
func nextReviewInterval(repetitions int) int {
	if repetitions <= 0 {
		repetitions = defaultRepetitions
	}
	return reviewWindowDays / repetitions
}
