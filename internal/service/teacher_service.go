package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/repository"
	"gorm.io/gorm"
)

type TeacherService interface {
	GetAllTeachers() ([]dto.TeacherResponseDTO, error)
	GetTeacher(userID uint) (*dto.TeacherResponseDTO, error)
	UpdateSubject(userID uint, subject string) (*dto.TeacherResponseDTO, error)
	DeleteTeacher(userID uint) error
}

type teacherService struct {
	repo repository.TeacherRepository
}

func NewTeacherService(repo repository.TeacherRepository) TeacherService {
	return &teacherService{repo: repo}
}

func (s *teacherService) GetAllTeachers() ([]dto.TeacherResponseDTO, error) {
	teachers, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.TeacherResponseDTO, 0, len(teachers))
	copier.Copy(&resp, &teachers)
	return resp, nil
}

func (s *teacherService) GetTeacher(userID uint) (*dto.TeacherResponseDTO, error) {
	teacher, err := s.repo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var resp dto.TeacherResponseDTO
	copier.Copy(&resp, teacher)
	return &resp, nil
}

func (s *teacherService) UpdateSubject(userID uint, subject string) (*dto.TeacherResponseDTO, error) {
	if _, err := s.repo.FindByUserID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.repo.UpdateSubject(userID, subject); err != nil {
		return nil, err
	}
	return s.GetTeacher(userID)
}

func (s *teacherService) DeleteTeacher(userID uint) error {
	if _, err := s.repo.FindByUserID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(userID)
}
