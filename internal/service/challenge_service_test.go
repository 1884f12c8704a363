package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
)

func TestUpsertProgressInsertThenUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewChallengeService(repository.NewChallengeRepository(db))

	challenge, err := svc.CreateChallenge(dto.ChallengeCreateDTO{Title: "Read 5 chapters", XP: 50})
	require.NoError(t, err)

	require.NoError(t, svc.UpsertProgress(dto.ChallengeProgressUpsertDTO{
		UserID:      7,
		ChallengeID: challenge.ID,
		Progress:    40,
	}))
	require.NoError(t, svc.UpsertProgress(dto.ChallengeProgressUpsertDTO{
		UserID:      7,
		ChallengeID: challenge.ID,
		Progress:    80,
	}))

	var rows []model.ChallengeProgress
	require.NoError(t, db.Where("user_id = ?", 7).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 80.0, rows[0].Progress)
	assert.False(t, rows[0].Completed)
}

func TestUpsertProgressUnknownChallenge(t *testing.T) {
	db := newTestDB(t)
	svc := NewChallengeService(repository.NewChallengeRepository(db))

	err := svc.UpsertProgress(dto.ChallengeProgressUpsertDTO{UserID: 1, ChallengeID: 999, Progress: 10})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetChallengesWithProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewChallengeService(repository.NewChallengeRepository(db))

	touched, err := svc.CreateChallenge(dto.ChallengeCreateDTO{Title: "Touched", XP: 10})
	require.NoError(t, err)
	untouched, err := svc.CreateChallenge(dto.ChallengeCreateDTO{Title: "Untouched", XP: 20})
	require.NoError(t, err)

	require.NoError(t, svc.UpsertProgress(dto.ChallengeProgressUpsertDTO{
		UserID:      3,
		ChallengeID: touched.ID,
		Progress:    25,
	}))

	rows, err := svc.GetChallengesWithProgress(3)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[uint]dto.ChallengeWithProgressDTO{}
	for _, row := range rows {
		byID[row.ID] = row
	}

	withProgress := byID[touched.ID]
	require.NotNil(t, withProgress.Progress)
	assert.Equal(t, 25.0, *withProgress.Progress)

	bare := byID[untouched.ID]
	assert.Nil(t, bare.Progress)
	assert.Nil(t, bare.Completed)
	assert.Nil(t, bare.CompletedAt)
}

func TestMarkCompletedCreatesMissingProgressRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewChallengeService(repository.NewChallengeRepository(db))

	challenge, err := svc.CreateChallenge(dto.ChallengeCreateDTO{Title: "Finish mock exam", XP: 100})
	require.NoError(t, err)

	require.NoError(t, svc.MarkCompleted(5, challenge.ID))

	var progress model.ChallengeProgress
	require.NoError(t, db.Where("user_id = ? AND challenge_id = ?", 5, challenge.ID).First(&progress).Error)
	assert.True(t, progress.Completed)
	assert.Equal(t, 100.0, progress.Progress)
	assert.NotNil(t, progress.CompletedAt)

	assert.ErrorIs(t, svc.MarkCompleted(5, 999), ErrNotFound)
}
