package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"gorm.io/gorm"
)

type AdminService interface {
	GetAllAdmins() ([]dto.AdminResponseDTO, error)
	CreateAdmin(req dto.AdminCreateDTO) (*dto.AdminResponseDTO, error)
}

type adminService struct {
	repo     repository.AdminRepository
	userRepo repository.UserRepository
}

func NewAdminService(repo repository.AdminRepository, userRepo repository.UserRepository) AdminService {
	return &adminService{repo: repo, userRepo: userRepo}
}

func (s *adminService) GetAllAdmins() ([]dto.AdminResponseDTO, error) {
	admins, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.AdminResponseDTO, 0, len(admins))
	copier.Copy(&resp, &admins)
	return resp, nil
}

// CreateAdmin grants the admin role to an existing user, denormalizing the
// user's email onto the admin row.
func (s *adminService) CreateAdmin(req dto.AdminCreateDTO) (*dto.AdminResponseDTO, error) {
	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	admin := model.Admin{UserID: user.ID, UserEmail: user.Email}
	if err := s.repo.Create(&admin); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Msg("Failed to create admin")
		return nil, err
	}

	if !user.IsAdmin {
		if err := s.userRepo.UpdateFields(user.ID, map[string]interface{}{"is_admin": true}); err != nil {
			return nil, err
		}
	}

	var resp dto.AdminResponseDTO
	copier.Copy(&resp, &admin)
	return &resp, nil
}
