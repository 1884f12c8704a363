package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/repository"
	"gorm.io/gorm"
)

type StudentService interface {
	GetAllStudents() ([]dto.StudentResponseDTO, error)
	GetStudent(userID uint) (*dto.StudentResponseDTO, error)
	UpdateStudent(userID uint, req dto.StudentUpdateDTO) (*dto.StudentResponseDTO, error)
	SetIntensiveMode(userID uint, enabled bool) error
	GetRankingStatus(userID uint) (*dto.RankingStatusDTO, error)
	AddXP(userID uint, xp int) (*dto.XPResultDTO, error)
	GetGlobalRanking() ([]dto.RankingEntryDTO, error)
}

type studentService struct {
	repo repository.StudentRepository
}

func NewStudentService(repo repository.StudentRepository) StudentService {
	return &studentService{repo: repo}
}

func (s *studentService) GetAllStudents() ([]dto.StudentResponseDTO, error) {
	students, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.StudentResponseDTO, 0, len(students))
	copier.Copy(&resp, &students)
	return resp, nil
}

func (s *studentService) GetStudent(userID uint) (*dto.StudentResponseDTO, error) {
	student, err := s.repo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var resp dto.StudentResponseDTO
	copier.Copy(&resp, student)
	return &resp, nil
}

func (s *studentService) UpdateStudent(userID uint, req dto.StudentUpdateDTO) (*dto.StudentResponseDTO, error) {
	if _, err := s.repo.FindByUserID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.IntensiveMode != nil {
		fields["intensive_mode"] = *req.IntensiveMode
	}
	if req.Diagnostic != nil {
		fields["diagnostic"] = *req.Diagnostic
	}
	if req.StudyPlanID != nil {
		fields["study_plan_id"] = *req.StudyPlanID
	}
	if req.Ranking != nil {
		fields["ranking"] = *req.Ranking
	}
	if req.XP != nil {
		fields["xp"] = *req.XP
	}
	if req.ProgressPercent != nil {
		fields["progress_percent"] = *req.ProgressPercent
	}

	if err := s.repo.UpdateFields(userID, fields); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to update student")
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return s.GetStudent(userID)
}

func (s *studentService) SetIntensiveMode(userID uint, enabled bool) error {
	if _, err := s.repo.FindByUserID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.SetIntensiveMode(userID, enabled)
}

func (s *studentService) GetRankingStatus(userID uint) (*dto.RankingStatusDTO, error) {
	student, err := s.repo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dto.RankingStatusDTO{Ranking: student.Ranking, XP: student.XP}, nil
}

func (s *studentService) AddXP(userID uint, xp int) (*dto.XPResultDTO, error) {
	if _, err := s.repo.FindByUserID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	total, err := s.repo.AddXP(userID, xp)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Failed to add XP")
		return nil, fmt.Errorf("failed to add xp: %w", err)
	}
	return &dto.XPResultDTO{XP: total}, nil
}

func (s *studentService) GetGlobalRanking() ([]dto.RankingEntryDTO, error) {
	rows, err := s.repo.FindRanking()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.RankingEntryDTO, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.RankingEntryDTO{
			UserID:   row.UserID,
			Name:     row.Name,
			XP:       row.XP,
			PhotoURL: row.PhotoURL,
		})
	}
	return resp, nil
}
