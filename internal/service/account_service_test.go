package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyquest/backend/config"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAccountService(db *gorm.DB) AccountService {
	cfg := &config.Config{JWTSecret: "test-secret"}
	return NewAccountService(
		db,
		cfg,
		repository.NewUserRepository(db),
		repository.NewStudentRepository(db),
		repository.NewTeacherRepository(db),
		repository.NewAdminRepository(db),
	)
}

func boolPtr(b bool) *bool { return &b }

func TestRegisterProvisionsAllRoleRows(t *testing.T) {
	db := newTestDB(t)
	svc := newAccountService(db)

	created, err := svc.Register(dto.UserCreateDTO{
		Name:      "Ana",
		Email:     "ana@example.com",
		Password:  "secret123",
		IsStudent: boolPtr(true),
		IsTeacher: boolPtr(true),
		IsAdmin:   boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, created.IsStudent)
	assert.True(t, created.IsTeacher)
	assert.True(t, created.IsAdmin)

	var user model.User
	require.NoError(t, db.First(&user, created.ID).Error)
	assert.NotEqual(t, "secret123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))

	var student model.Student
	require.NoError(t, db.Where("user_id = ?", created.ID).First(&student).Error)
	var teacher model.Teacher
	require.NoError(t, db.Where("user_id = ?", created.ID).First(&teacher).Error)
	var admin model.Admin
	require.NoError(t, db.Where("user_id = ?", created.ID).First(&admin).Error)
	assert.Equal(t, "ana@example.com", admin.UserEmail)
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	db := newTestDB(t)
	svc := newAccountService(db)

	created, err := svc.Register(dto.UserCreateDTO{
		Name:     "Bruno",
		Email:    "bruno@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.True(t, created.IsStudent)
	assert.False(t, created.IsTeacher)
	assert.False(t, created.IsAdmin)

	var students, teachers, admins int64
	db.Model(&model.Student{}).Count(&students)
	db.Model(&model.Teacher{}).Count(&teachers)
	db.Model(&model.Admin{}).Count(&admins)
	assert.Equal(t, int64(1), students)
	assert.Equal(t, int64(0), teachers)
	assert.Equal(t, int64(0), admins)
}

func TestRegisterDuplicateEmailRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := newAccountService(db)

	_, err := svc.Register(dto.UserCreateDTO{
		Name:     "Carla",
		Email:    "carla@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(dto.UserCreateDTO{
		Name:      "Carla Again",
		Email:     "carla@example.com",
		Password:  "another123",
		IsTeacher: boolPtr(true),
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	var users, students, teachers int64
	db.Model(&model.User{}).Count(&users)
	db.Model(&model.Student{}).Count(&students)
	db.Model(&model.Teacher{}).Count(&teachers)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), students)
	assert.Equal(t, int64(0), teachers)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAccountService(db)

	_, err := svc.Register(dto.UserCreateDTO{
		Name:     "Davi",
		Email:    "davi@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(dto.LoginDTO{Email: "davi@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "davi@example.com", resp.User.Email)

	_, err = svc.Login(dto.LoginDTO{Email: "davi@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(dto.LoginDTO{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCheckPasswordUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAccountService(db)

	resp, err := svc.CheckPassword(dto.PasswordCheckDTO{Email: "ghost@example.com", Password: "x"})
	require.NoError(t, err)
	assert.False(t, resp.Valid)
}

func TestCheckUserAndUserType(t *testing.T) {
	db := newTestDB(t)
	svc := newAccountService(db)

	_, err := svc.Register(dto.UserCreateDTO{
		Name:      "Edu",
		Email:     "edu@example.com",
		Password:  "secret123",
		IsStudent: boolPtr(false),
		IsTeacher: boolPtr(true),
	})
	require.NoError(t, err)

	exists, err := svc.CheckUser("edu@example.com")
	require.NoError(t, err)
	assert.True(t, exists.Exists)

	exists, err = svc.CheckUser("missing@example.com")
	require.NoError(t, err)
	assert.False(t, exists.Exists)

	userType, err := svc.CheckUserType("edu@example.com")
	require.NoError(t, err)
	assert.False(t, userType.IsStudent)
	assert.True(t, userType.IsTeacher)

	_, err = svc.CheckUserType("missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecoverPasswordUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAccountService(db)

	_, err := svc.RecoverPassword(dto.PasswordRecoveryDTO{Email: "ghost@example.com"})
	assert.ErrorIs(t, err, ErrNotFound)
}
