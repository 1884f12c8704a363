package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
)

func TestAddXPAccumulates(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudentService(repository.NewStudentRepository(db))

	require.NoError(t, db.Create(&model.Student{UserID: 1, XP: 100}).Error)

	result, err := svc.AddXP(1, 50)
	require.NoError(t, err)
	assert.Equal(t, 150, result.XP)

	result, err = svc.AddXP(1, 25)
	require.NoError(t, err)
	assert.Equal(t, 175, result.XP)

	_, err = svc.AddXP(99, 10)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetIntensiveMode(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudentService(repository.NewStudentRepository(db))

	require.NoError(t, db.Create(&model.Student{UserID: 2}).Error)

	require.NoError(t, svc.SetIntensiveMode(2, true))
	var stored model.Student
	require.NoError(t, db.Where("user_id = ?", 2).First(&stored).Error)
	assert.True(t, stored.IntensiveMode)

	require.NoError(t, svc.SetIntensiveMode(2, false))
	require.NoError(t, db.Where("user_id = ?", 2).First(&stored).Error)
	assert.False(t, stored.IntensiveMode)

	assert.ErrorIs(t, svc.SetIntensiveMode(99, true), ErrNotFound)
}

func TestGlobalRankingOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudentService(repository.NewStudentRepository(db))

	users := []model.User{
		{Name: "Zeca", Email: "zeca@example.com", Password: "hash"},
		{Name: "Alice", Email: "alice@example.com", Password: "hash"},
		{Name: "Bia", Email: "bia@example.com", Password: "hash"},
	}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}
	require.NoError(t, db.Create(&model.Student{UserID: users[0].ID, XP: 200}).Error)
	require.NoError(t, db.Create(&model.Student{UserID: users[1].ID, XP: 500}).Error)
	require.NoError(t, db.Create(&model.Student{UserID: users[2].ID, XP: 200}).Error)

	ranking, err := svc.GetGlobalRanking()
	require.NoError(t, err)
	require.Len(t, ranking, 3)
	assert.Equal(t, "Alice", ranking[0].Name)
	assert.Equal(t, "Bia", ranking[1].Name)
	assert.Equal(t, "Zeca", ranking[2].Name)
}

func TestGetRankingStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudentService(repository.NewStudentRepository(db))

	require.NoError(t, db.Create(&model.Student{UserID: 5, Ranking: 3, XP: 420}).Error)

	status, err := svc.GetRankingStatus(5)
	require.NoError(t, err)
	assert.Equal(t, 3, status.Ranking)
	assert.Equal(t, 420, status.XP)

	_, err = svc.GetRankingStatus(99)
	assert.ErrorIs(t, err, ErrNotFound)
}
