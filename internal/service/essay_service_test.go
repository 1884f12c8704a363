package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
)

// stubGemini returns a canned score without calling the real model.
type stubGemini struct {
	score    float64
	feedback string
	err      error
}

func (s *stubGemini) ScoreEssay(ctx context.Context, text string) (float64, string, error) {
	return s.score, s.feedback, s.err
}

func TestRequestAICorrectionPersistsScore(t *testing.T) {
	db := newTestDB(t)
	svc := NewEssayService(
		repository.NewEssayRepository(db),
		&stubGemini{score: 8.5, feedback: "Strong thesis."},
	)

	created, err := svc.CreateEssay(dto.EssayCreateDTO{UserID: 1, Text: "An essay about rivers."})
	require.NoError(t, err)
	assert.False(t, created.CorrectedByAI)

	corrected, err := svc.RequestAICorrection(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, corrected.AIScore)
	assert.Equal(t, 8.5, *corrected.AIScore)
	assert.Equal(t, "Strong thesis.", corrected.Feedback)
	assert.True(t, corrected.CorrectedByAI)

	var stored model.Essay
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.True(t, stored.Corrected())
	require.NotNil(t, stored.AIScore)
	assert.Equal(t, 8.5, *stored.AIScore)
}

func TestRequestAICorrectionModelFailure(t *testing.T) {
	db := newTestDB(t)
	svc := NewEssayService(
		repository.NewEssayRepository(db),
		&stubGemini{err: errors.New("quota exceeded")},
	)

	created, err := svc.CreateEssay(dto.EssayCreateDTO{UserID: 1, Text: "text"})
	require.NoError(t, err)

	_, err = svc.RequestAICorrection(context.Background(), created.ID)
	assert.Error(t, err)

	var stored model.Essay
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.False(t, stored.CorrectedByAI)
	assert.Nil(t, stored.AIScore)
}

func TestApplyTeacherCorrection(t *testing.T) {
	db := newTestDB(t)
	svc := NewEssayService(repository.NewEssayRepository(db), &stubGemini{})

	created, err := svc.CreateEssay(dto.EssayCreateDTO{UserID: 2, Text: "text"})
	require.NoError(t, err)

	corrected, err := svc.ApplyTeacherCorrection(created.ID, dto.EssayTeacherCorrectionDTO{
		Score:    6,
		Feedback: "Revise the conclusion.",
	})
	require.NoError(t, err)
	require.NotNil(t, corrected.TeacherScore)
	assert.Equal(t, 6.0, *corrected.TeacherScore)
	assert.True(t, corrected.CorrectedByTeacher)
	assert.Equal(t, "Revise the conclusion.", corrected.Feedback)

	_, err = svc.ApplyTeacherCorrection(999, dto.EssayTeacherCorrectionDTO{Score: 5})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetEssaysByUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewEssayService(repository.NewEssayRepository(db), &stubGemini{})

	_, err := svc.CreateEssay(dto.EssayCreateDTO{UserID: 3, Text: "first"})
	require.NoError(t, err)
	_, err = svc.CreateEssay(dto.EssayCreateDTO{UserID: 3, Text: "second"})
	require.NoError(t, err)
	_, err = svc.CreateEssay(dto.EssayCreateDTO{UserID: 4, Text: "other user"})
	require.NoError(t, err)

	essays, err := svc.GetEssaysByUser(3)
	require.NoError(t, err)
	assert.Len(t, essays, 2)
}
