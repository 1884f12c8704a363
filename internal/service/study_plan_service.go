package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"gorm.io/gorm"
)

type StudyPlanService interface {
	CreateEntry(req dto.StudyPlanCreateDTO) (*dto.StudyPlanResponseDTO, error)
	GetEntry(id uint) (*dto.StudyPlanResponseDTO, error)
	GetEntriesByUser(userID uint) ([]dto.StudyPlanResponseDTO, error)
	UpdateEntry(id uint, req dto.StudyPlanUpdateDTO) (*dto.StudyPlanResponseDTO, error)
	DeleteEntry(id uint) error
}

type studyPlanService struct {
	repo repository.StudyPlanRepository
}

func NewStudyPlanService(repo repository.StudyPlanRepository) StudyPlanService {
	return &studyPlanService{repo: repo}
}

func (s *studyPlanService) CreateEntry(req dto.StudyPlanCreateDTO) (*dto.StudyPlanResponseDTO, error) {
	entry := model.StudyPlanEntry{}
	copier.Copy(&entry, &req)

	if err := s.repo.Create(&entry); err != nil {
		return nil, fmt.Errorf("failed to create study plan entry: %w", err)
	}
	var resp dto.StudyPlanResponseDTO
	copier.Copy(&resp, &entry)
	return &resp, nil
}

func (s *studyPlanService) GetEntry(id uint) (*dto.StudyPlanResponseDTO, error) {
	entry, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var resp dto.StudyPlanResponseDTO
	copier.Copy(&resp, entry)
	return &resp, nil
}

func (s *studyPlanService) GetEntriesByUser(userID uint) ([]dto.StudyPlanResponseDTO, error) {
	entries, err := s.repo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StudyPlanResponseDTO, 0, len(entries))
	copier.Copy(&resp, &entries)
	return resp, nil
}

func (s *studyPlanService) UpdateEntry(id uint, req dto.StudyPlanUpdateDTO) (*dto.StudyPlanResponseDTO, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Day != nil {
		fields["day"] = *req.Day
	}
	if req.Subject != nil {
		fields["subject"] = *req.Subject
	}
	if req.Topic != nil {
		fields["topic"] = *req.Topic
	}
	if req.StartTime != nil {
		fields["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		fields["end_time"] = *req.EndTime
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("failed to update study plan entry: %w", err)
	}
	return s.GetEntry(id)
}

func (s *studyPlanService) DeleteEntry(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
