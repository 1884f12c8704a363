package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/config"
	"github.com/studyquest/backend/internal/auth"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AccountService interface {
	Register(req dto.UserCreateDTO) (*dto.UserCreatedDTO, error)
	Login(req dto.LoginDTO) (*dto.LoginResponseDTO, error)
	CheckUser(email string) (*dto.UserExistsDTO, error)
	CheckUserType(email string) (*dto.UserTypeDTO, error)
	CheckPassword(req dto.PasswordCheckDTO) (*dto.PasswordValidDTO, error)
	RecoverPassword(req dto.PasswordRecoveryDTO) (*dto.MessageResponse, error)
}

type accountService struct {
	db          *gorm.DB
	cfg         *config.Config
	userRepo    repository.UserRepository
	studentRepo repository.StudentRepository
	teacherRepo repository.TeacherRepository
	adminRepo   repository.AdminRepository
}

func NewAccountService(
	db *gorm.DB,
	cfg *config.Config,
	userRepo repository.UserRepository,
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
	adminRepo repository.AdminRepository,
) AccountService {
	return &accountService{
		db:          db,
		cfg:         cfg,
		userRepo:    userRepo,
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		adminRepo:   adminRepo,
	}
}

// Register provisions the base user row plus one detail row per granted role,
// all inside a single transaction. An absent student flag defaults to true.
func (s *accountService) Register(req dto.UserCreateDTO) (*dto.UserCreatedDTO, error) {
	isStudent := true
	if req.IsStudent != nil {
		isStudent = *req.IsStudent
	}
	isTeacher := req.IsTeacher != nil && *req.IsTeacher
	isAdmin := req.IsAdmin != nil && *req.IsAdmin

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		IsStudent: isStudent,
		IsTeacher: isTeacher,
		IsAdmin:   isAdmin,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).Create(&user); err != nil {
			return err
		}
		if isStudent {
			if err := s.studentRepo.WithTx(tx).Create(&model.Student{UserID: user.ID}); err != nil {
				return err
			}
		}
		if isTeacher {
			if err := s.teacherRepo.WithTx(tx).Create(&model.Teacher{UserID: user.ID}); err != nil {
				return err
			}
		}
		if isAdmin {
			if err := s.adminRepo.WithTx(tx).Create(&model.Admin{UserID: user.ID, UserEmail: user.Email}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to provision user")
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	return &dto.UserCreatedDTO{
		Message:   "User created successfully",
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		IsStudent: user.IsStudent,
		IsTeacher: user.IsTeacher,
		IsAdmin:   user.IsAdmin,
	}, nil
}

func (s *accountService) Login(req dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.cfg.JWTSecret, user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to issue token")
		return nil, err
	}

	return &dto.LoginResponseDTO{
		Message: "Login successful",
		User:    toUserResponse(user),
		Token:   token,
	}, nil
}

func (s *accountService) CheckUser(email string) (*dto.UserExistsDTO, error) {
	exists, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	return &dto.UserExistsDTO{Exists: exists}, nil
}

func (s *accountService) CheckUserType(email string) (*dto.UserTypeDTO, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &dto.UserTypeDTO{
		Exists:    true,
		ID:        user.ID,
		Name:      user.Name,
		IsStudent: user.IsStudent,
		IsTeacher: user.IsTeacher,
		IsAdmin:   user.IsAdmin,
	}, nil
}

func (s *accountService) CheckPassword(req dto.PasswordCheckDTO) (*dto.PasswordValidDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.PasswordValidDTO{Valid: false}, nil
		}
		return nil, err
	}
	valid := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) == nil
	return &dto.PasswordValidDTO{Valid: valid}, nil
}

// RecoverPassword only confirms the address is registered. Mail delivery is
// handled outside this service.
func (s *accountService) RecoverPassword(req dto.PasswordRecoveryDTO) (*dto.MessageResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	log.Info().Str("email", req.Email).Msg("Password recovery requested")
	return &dto.MessageResponse{Message: "Recovery instructions sent"}, nil
}

// isDuplicateKey detects a unique-constraint violation across the drivers we
// run against (postgres in production, sqlite in tests).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
