package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"gorm.io/gorm"
)

type ChallengeService interface {
	CreateChallenge(req dto.ChallengeCreateDTO) (*dto.ChallengeResponseDTO, error)
	GetAllChallenges() ([]dto.ChallengeResponseDTO, error)
	GetChallenge(id uint) (*dto.ChallengeResponseDTO, error)
	UpdateChallenge(id uint, req dto.ChallengeUpdateDTO) (*dto.ChallengeResponseDTO, error)
	DeleteChallenge(id uint) error

	UpsertProgress(req dto.ChallengeProgressUpsertDTO) error
	GetChallengesWithProgress(userID uint) ([]dto.ChallengeWithProgressDTO, error)
	MarkCompleted(userID, challengeID uint) error
}

type challengeService struct {
	repo repository.ChallengeRepository
}

func NewChallengeService(repo repository.ChallengeRepository) ChallengeService {
	return &challengeService{repo: repo}
}

func (s *challengeService) CreateChallenge(req dto.ChallengeCreateDTO) (*dto.ChallengeResponseDTO, error) {
	challenge := model.Challenge{}
	copier.Copy(&challenge, &req)

	if err := s.repo.Create(&challenge); err != nil {
		log.Error().Err(err).Msg("Failed to create challenge")
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}
	var resp dto.ChallengeResponseDTO
	copier.Copy(&resp, &challenge)
	return &resp, nil
}

func (s *challengeService) GetAllChallenges() ([]dto.ChallengeResponseDTO, error) {
	challenges, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ChallengeResponseDTO, 0, len(challenges))
	copier.Copy(&resp, &challenges)
	return resp, nil
}

func (s *challengeService) GetChallenge(id uint) (*dto.ChallengeResponseDTO, error) {
	challenge, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var resp dto.ChallengeResponseDTO
	copier.Copy(&resp, challenge)
	return &resp, nil
}

func (s *challengeService) UpdateChallenge(id uint, req dto.ChallengeUpdateDTO) (*dto.ChallengeResponseDTO, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.XP != nil {
		fields["xp"] = *req.XP
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("failed to update challenge: %w", err)
	}
	return s.GetChallenge(id)
}

func (s *challengeService) DeleteChallenge(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}

// UpsertProgress inserts the (user, challenge) progress row or updates the
// existing one.
func (s *challengeService) UpsertProgress(req dto.ChallengeProgressUpsertDTO) error {
	if _, err := s.repo.FindByID(req.ChallengeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	progress, err := s.repo.FindProgress(req.UserID, req.ChallengeID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		created := model.ChallengeProgress{
			UserID:      req.UserID,
			ChallengeID: req.ChallengeID,
			Progress:    req.Progress,
			Completed:   req.Completed,
		}
		return s.repo.CreateProgress(&created)
	}

	progress.Progress = req.Progress
	progress.Completed = req.Completed
	return s.repo.SaveProgress(progress)
}

func (s *challengeService) GetChallengesWithProgress(userID uint) ([]dto.ChallengeWithProgressDTO, error) {
	rows, err := s.repo.FindAllWithProgress(userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ChallengeWithProgressDTO, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.ChallengeWithProgressDTO{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			XP:          row.XP,
			ImageURL:    row.ImageURL,
			Progress:    row.Progress,
			Completed:   row.Completed,
			CompletedAt: row.CompletedAt,
		})
	}
	return resp, nil
}

// MarkCompleted flags the progress row as done, creating it when the user
// never reported partial progress.
func (s *challengeService) MarkCompleted(userID, challengeID uint) error {
	if _, err := s.repo.FindByID(challengeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if _, err := s.repo.FindProgress(userID, challengeID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		created := model.ChallengeProgress{
			UserID:      userID,
			ChallengeID: challengeID,
			Progress:    100,
		}
		if err := s.repo.CreateProgress(&created); err != nil {
			return err
		}
	}
	return s.repo.MarkCompleted(userID, challengeID)
}
