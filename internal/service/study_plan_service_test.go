package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/repository"
)

func TestStudyPlanEntryLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewStudyPlanService(repository.NewStudyPlanRepository(db))

	created, err := svc.CreateEntry(dto.StudyPlanCreateDTO{
		UserID:    1,
		Day:       "monday",
		Subject:   "math",
		Topic:     "fractions",
		StartTime: "08:00",
		EndTime:   "09:30",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEntry(created.ID, dto.StudyPlanUpdateDTO{Topic: strPtr("decimals")})
	require.NoError(t, err)
	assert.Equal(t, "decimals", updated.Topic)
	assert.Equal(t, "monday", updated.Day)
	assert.Equal(t, "08:00", updated.StartTime)

	entries, err := svc.GetEntriesByUser(1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, svc.DeleteEntry(created.ID))
	_, err = svc.GetEntry(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	entries, err = svc.GetEntriesByUser(1)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
