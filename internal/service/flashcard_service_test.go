package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
)

func TestNextReviewInterval(t *testing.T) {
	tests := []struct {
		name        string
		repetitions int
		wantDays    int
	}{
		{"default count", 4, 7},
		{"daily cadence", 30, 1},
		{"single repetition", 1, 30},
		{"zero falls back to default", 0, 7},
		{"negative falls back to default", -3, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDays, nextReviewInterval(tt.repetitions))
		})
	}
}

func TestReviewFlashcardPersistsSchedule(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewFlashcardRepository(db)
	svc := NewFlashcardService(repo)

	created, err := svc.CreateFlashcard(dto.FlashcardCreateDTO{
		UserID:   1,
		Question: "What is the capital of France?",
		Answer:   "Paris",
		Subject:  "geography",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.Repetitions)
	assert.Equal(t, 2.5, created.Difficulty)

	before := time.Now()
	result, err := svc.ReviewFlashcard(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, result.DaysUntilNext)

	var stored model.Flashcard
	require.NoError(t, db.First(&stored, created.ID).Error)
	require.NotNil(t, stored.NextReview)
	assert.False(t, stored.LastReview.Before(before.Add(-time.Second)))
	assert.WithinDuration(t, before.AddDate(0, 0, 7), *stored.NextReview, 5*time.Second)
}

func TestReviewFlashcardNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewFlashcardService(repository.NewFlashcardRepository(db))

	_, err := svc.ReviewFlashcard(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetFlashcardsByUserEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewFlashcardService(repository.NewFlashcardRepository(db))

	cards, err := svc.GetFlashcardsByUser(42)
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}
