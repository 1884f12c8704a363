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

type UserService interface {
	GetAllUsers() ([]dto.UserResponseDTO, error)
	GetUser(id uint) (*dto.UserResponseDTO, error)
	UpdateUser(id uint, req dto.UserUpdateDTO) (*dto.UserResponseDTO, error)
	DeleteUser(id uint) error
}

type userService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
}

func NewUserService(userRepo repository.UserRepository, adminRepo repository.AdminRepository) UserService {
	return &userService{userRepo: userRepo, adminRepo: adminRepo}
}

func (s *userService) GetAllUsers() ([]dto.UserResponseDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponseDTO, 0, len(users))
	for i := range users {
		resp = append(resp, toUserResponse(&users[i]))
	}
	return resp, nil
}

func (s *userService) GetUser(id uint) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateUser applies a sparse patch: only fields present in the request reach
// the UPDATE. Changing an email an admin row references is rejected.
func (s *userService) UpdateUser(id uint, req dto.UserUpdateDTO) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		referenced, err := s.adminRepo.ExistsByUserEmail(user.Email)
		if err != nil {
			return nil, err
		}
		if referenced {
			log.Warn().Uint("userID", id).Msg("Rejected email change for admin-referenced user")
			return nil, ErrAdminEmailReferenced
		}
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Color != nil {
		fields["color"] = *req.Color
	}
	if req.PhotoURL != nil {
		fields["photo_url"] = *req.PhotoURL
	}
	if req.Photo != nil {
		raw, err := base64.StdEncoding.DecodeString(*req.Photo)
		if err != nil {
			return nil, fmt.Errorf("invalid photo encoding: %w", err)
		}
		fields["photo"] = raw
	}

	if err := s.userRepo.UpdateFields(id, fields); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		log.Error().Err(err).Uint("userID", id).Msg("Failed to update user")
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	updated, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(updated)
	return &resp, nil
}

func (s *userService) DeleteUser(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.userRepo.Delete(id)
}

// toUserResponse maps a user row to its transport shape, encoding stored photo
// bytes as a data URI.
func toUserResponse(user *model.User) dto.UserResponseDTO {
	resp := dto.UserResponseDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		IsStudent: user.IsStudent,
		IsTeacher: user.IsTeacher,
		IsAdmin:   user.IsAdmin,
		PhotoURL:  user.PhotoURL,
		Color:     user.Color,
		CreatedAt: user.CreatedAt,
	}
	if len(user.Photo) > 0 {
		resp.Photo = "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(user.Photo)
	}
	return resp
}
