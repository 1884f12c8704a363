package service

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"gorm.io/gorm"
)

type MaterialService interface {
	CreateMaterial(req dto.MaterialCreateDTO) (*dto.MaterialResponseDTO, error)
	GetAllMaterials() ([]dto.MaterialResponseDTO, error)
	GetMaterialsBySubject(subject string) ([]dto.MaterialResponseDTO, error)
	GetMaterialFile(id uint) ([]byte, error)
	UpdateMaterial(id uint, req dto.MaterialUpdateDTO) (*dto.MaterialResponseDTO, error)
	DeleteMaterial(id uint) error

	UpsertProgress(req dto.MaterialProgressUpsertDTO) error
	GetProgressByUser(userID uint) ([]dto.MaterialProgressEntryDTO, error)
}

type materialService struct {
	repo repository.MaterialRepository
}

func NewMaterialService(repo repository.MaterialRepository) MaterialService {
	return &materialService{repo: repo}
}

func (s *materialService) CreateMaterial(req dto.MaterialCreateDTO) (*dto.MaterialResponseDTO, error) {
	material := model.Material{
		Subject:   req.Subject,
		Topic:     req.Topic,
		Subtopic:  req.Subtopic,
		Title:     req.Title,
		CreatedBy: req.CreatedBy,
	}
	if req.File != "" {
		raw, err := base64.StdEncoding.DecodeString(req.File)
		if err != nil {
			return nil, fmt.Errorf("invalid file encoding: %w", err)
		}
		material.File = raw
	}

	if err := s.repo.Create(&material); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Failed to create material")
		return nil, fmt.Errorf("failed to create material: %w", err)
	}
	resp := toMaterialResponse(&material, false)
	return &resp, nil
}

func (s *materialService) GetAllMaterials() ([]dto.MaterialResponseDTO, error) {
	materials, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MaterialResponseDTO, 0, len(materials))
	for i := range materials {
		resp = append(resp, toMaterialResponse(&materials[i], false))
	}
	return resp, nil
}

// GetMaterialsBySubject includes the file payload, re-encoded to base64.
func (s *materialService) GetMaterialsBySubject(subject string) ([]dto.MaterialResponseDTO, error) {
	materials, err := s.repo.FindBySubject(subject)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MaterialResponseDTO, 0, len(materials))
	for i := range materials {
		resp = append(resp, toMaterialResponse(&materials[i], true))
	}
	return resp, nil
}

// GetMaterialFile returns the raw stored bytes for streaming.
func (s *materialService) GetMaterialFile(id uint) ([]byte, error) {
	material, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(material.File) == 0 {
		return nil, ErrNotFound
	}
	return material.File, nil
}

func (s *materialService) UpdateMaterial(id uint, req dto.MaterialUpdateDTO) (*dto.MaterialResponseDTO, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Subject != nil {
		fields["subject"] = *req.Subject
	}
	if req.Topic != nil {
		fields["topic"] = *req.Topic
	}
	if req.Subtopic != nil {
		fields["subtopic"] = *req.Subtopic
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.File != nil {
		raw, err := base64.StdEncoding.DecodeString(*req.File)
		if err != nil {
			return nil, fmt.Errorf("invalid file encoding: %w", err)
		}
		fields["file"] = raw
	}

	if err := s.repo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("failed to update material: %w", err)
	}

	updated, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := toMaterialResponse(updated, false)
	return &resp, nil
}

func (s *materialService) DeleteMaterial(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}

func (s *materialService) UpsertProgress(req dto.MaterialProgressUpsertDTO) error {
	if _, err := s.repo.FindByID(req.MaterialID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	progress, err := s.repo.FindProgress(req.UserID, req.MaterialID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		created := model.MaterialProgress{
			UserID:     req.UserID,
			MaterialID: req.MaterialID,
			Completed:  req.Completed,
		}
		return s.repo.CreateProgress(&created)
	}

	progress.Completed = req.Completed
	return s.repo.SaveProgress(progress)
}

func (s *materialService) GetProgressByUser(userID uint) ([]dto.MaterialProgressEntryDTO, error) {
	rows, err := s.repo.FindProgressByUser(userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MaterialProgressEntryDTO, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.MaterialProgressEntryDTO{
			MaterialID: row.MaterialID,
			Completed:  row.Completed,
			Subject:    row.Subject,
		})
	}
	return resp, nil
}

func toMaterialResponse(material *model.Material, includeFile bool) dto.MaterialResponseDTO {
	resp := dto.MaterialResponseDTO{
		ID:        material.ID,
		Subject:   material.Subject,
		Topic:     material.Topic,
		Subtopic:  material.Subtopic,
		Title:     material.Title,
		CreatedBy: material.CreatedBy,
		CreatedAt: material.CreatedAt,
	}
	if includeFile && len(material.File) > 0 {
		resp.File = base64.StdEncoding.EncodeToString(material.File)
	}
	return resp
}
