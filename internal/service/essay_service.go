package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"gorm.io/gorm"
)

type EssayService interface {
	CreateEssay(req dto.EssayCreateDTO) (*dto.EssayResponseDTO, error)
	GetEssay(id uint) (*dto.EssayResponseDTO, error)
	GetEssaysByUser(userID uint) ([]dto.EssayResponseDTO, error)
	RequestAICorrection(ctx context.Context, id uint) (*dto.EssayResponseDTO, error)
	ApplyTeacherCorrection(id uint, req dto.EssayTeacherCorrectionDTO) (*dto.EssayResponseDTO, error)
}

type essayService struct {
	repo   repository.EssayRepository
	gemini GeminiService
}

func NewEssayService(repo repository.EssayRepository, gemini GeminiService) EssayService {
	return &essayService{repo: repo, gemini: gemini}
}

func (s *essayService) CreateEssay(req dto.EssayCreateDTO) (*dto.EssayResponseDTO, error) {
	essay := model.Essay{UserID: req.UserID, Text: req.Text}
	if err := s.repo.Create(&essay); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Msg("Failed to create essay")
		return nil, fmt.Errorf("failed to create essay: %w", err)
	}
	var resp dto.EssayResponseDTO
	copier.Copy(&resp, &essay)
	return &resp, nil
}

func (s *essayService) GetEssay(id uint) (*dto.EssayResponseDTO, error) {
	essay, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var resp dto.EssayResponseDTO
	copier.Copy(&resp, essay)
	return &resp, nil
}

func (s *essayService) GetEssaysByUser(userID uint) ([]dto.EssayResponseDTO, error) {
	essays, err := s.repo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EssayResponseDTO, 0, len(essays))
	copier.Copy(&resp, &essays)
	return resp, nil
}

// RequestAICorrection sends the essay text to the model and persists the
// resulting score and feedback.
func (s *essayService) RequestAICorrection(ctx context.Context, id uint) (*dto.EssayResponseDTO, error) {
	essay, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	score, feedback, err := s.gemini.ScoreEssay(ctx, essay.Text)
	if err != nil {
		log.Error().Err(err).Uint("essayID", id).Msg("AI correction failed")
		return nil, fmt.Errorf("ai correction failed: %w", err)
	}

	essay.AIScore = &score
	essay.Feedback = feedback
	essay.CorrectedByAI = true
	if err := s.repo.Update(essay); err != nil {
		return nil, fmt.Errorf("failed to persist ai correction: %w", err)
	}

	var resp dto.EssayResponseDTO
	copier.Copy(&resp, essay)
	return &resp, nil
}

func (s *essayService) ApplyTeacherCorrection(id uint, req dto.EssayTeacherCorrectionDTO) (*dto.EssayResponseDTO, error) {
	essay, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	essay.TeacherScore = &req.Score
	if req.Feedback != "" {
		essay.Feedback = req.Feedback
	}
	essay.CorrectedByTeacher = true
	if err := s.repo.Update(essay); err != nil {
		return nil, fmt.Errorf("failed to persist teacher correction: %w", err)
	}

	var resp dto.EssayResponseDTO
	copier.Copy(&resp, essay)
	return &resp, nil
}
