package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) UserService {
	return NewUserService(repository.NewUserRepository(db), repository.NewAdminRepository(db))
}

func strPtr(s string) *string { return &s }

func TestUpdateUserSparsePatch(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	user := model.User{Name: "Fabio", Email: "fabio@example.com", Password: "hash", Color: "blue"}
	require.NoError(t, db.Create(&user).Error)

	updated, err := svc.UpdateUser(user.ID, dto.UserUpdateDTO{Color: strPtr("green")})
	require.NoError(t, err)
	assert.Equal(t, "green", updated.Color)
	assert.Equal(t, "Fabio", updated.Name)
	assert.Equal(t, "fabio@example.com", updated.Email)
}

func TestUpdateUserAdminEmailGuard(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	user := model.User{Name: "Gina", Email: "gina@example.com", Password: "hash", IsAdmin: true}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&model.Admin{UserID: user.ID, UserEmail: user.Email}).Error)

	_, err := svc.UpdateUser(user.ID, dto.UserUpdateDTO{Email: strPtr("new@example.com")})
	assert.ErrorIs(t, err, ErrAdminEmailReferenced)

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "gina@example.com", stored.Email)
}

func TestUpdateUserSameEmailPassesGuard(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	user := model.User{Name: "Hugo", Email: "hugo@example.com", Password: "hash", IsAdmin: true}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&model.Admin{UserID: user.ID, UserEmail: user.Email}).Error)

	updated, err := svc.UpdateUser(user.ID, dto.UserUpdateDTO{
		Email: strPtr("hugo@example.com"),
		Name:  strPtr("Hugo Santos"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Hugo Santos", updated.Name)
}

func TestDeleteUserLeavesRoleRows(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	user := model.User{Name: "Iris", Email: "iris@example.com", Password: "hash", IsStudent: true}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&model.Student{UserID: user.ID}).Error)

	require.NoError(t, svc.DeleteUser(user.ID))

	var users int64
	db.Model(&model.User{}).Count(&users)
	assert.Equal(t, int64(0), users)

	var students int64
	db.Model(&model.Student{}).Where("user_id = ?", user.ID).Count(&students)
	assert.Equal(t, int64(1), students)

	assert.ErrorIs(t, svc.DeleteUser(user.ID), ErrNotFound)
}

func TestGetUserEncodesPhotoAsDataURI(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	user := model.User{
		Name:     "Joao",
		Email:    "joao@example.com",
		Password: "hash",
		Photo:    []byte{0xFF, 0xD8, 0xFF},
	}
	require.NoError(t, db.Create(&user).Error)

	resp, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.Photo, "data:image/jpeg;base64,"))
}
