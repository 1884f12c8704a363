package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/studyquest/backend/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Teacher{},
		&model.Admin{},
		&model.Flashcard{},
		&model.StudyPlanEntry{},
		&model.Challenge{},
		&model.ChallengeProgress{},
		&model.Material{},
		&model.MaterialProgress{},
		&model.Question{},
		&model.ExamAttempt{},
		&model.Essay{},
	))
	return db
}
