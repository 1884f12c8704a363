package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyquest/backend/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newFlashcardTestRepo(t *testing.T) FlashcardRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Flashcard{}))
	return NewFlashcardRepository(db)
}

func TestCountDueOnlyCountsElapsedSchedules(t *testing.T) {
	repo := newFlashcardTestRepo(t)
	now := time.Now()

	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)
	cards := []model.Flashcard{
		{UserID: 1, Question: "due yesterday", Answer: "a", NextReview: &past},
		{UserID: 1, Question: "due tomorrow", Answer: "b", NextReview: &future},
		{UserID: 2, Question: "never reviewed", Answer: "c"},
	}
	for i := range cards {
		require.NoError(t, repo.Create(&cards[i]))
	}

	due, err := repo.CountDue(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), due)
}
