package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"gorm.io/gorm"
)

func newExamFixture(db *gorm.DB) (ExamService, QuestionService) {
	questionRepo := repository.NewQuestionRepository(db)
	return NewExamService(questionRepo, repository.NewExamAttemptRepository(db)),
		NewQuestionService(questionRepo)
}

func seedQuestion(t *testing.T, questions QuestionService, statement, answer, subject string, difficulty int) uint {
	t.Helper()
	created, err := questions.CreateQuestion(dto.QuestionCreateDTO{
		Statement:     statement,
		Choices:       []string{"A", "B", "C", "D"},
		CorrectAnswer: answer,
		Subject:       subject,
		Difficulty:    difficulty,
	})
	require.NoError(t, err)
	return created.ID
}

func TestSubmitExamGradesAndPersistsAttempt(t *testing.T) {
	db := newTestDB(t)
	exams, questions := newExamFixture(db)

	q1 := seedQuestion(t, questions, "2+2?", "B", "math", 1)
	q2 := seedQuestion(t, questions, "3*3?", "C", "math", 1)
	q3 := seedQuestion(t, questions, "10/2?", "A", "math", 1)
	q4 := seedQuestion(t, questions, "7-4?", "D", "math", 1)

	result, err := exams.SubmitExam(dto.ExamSubmitDTO{
		UserID:  1,
		Subject: "math",
		Answers: []dto.ExamAnswerDTO{
			{QuestionID: q1, Answer: "B"},
			{QuestionID: q2, Answer: "C"},
			{QuestionID: q3, Answer: "A"},
			{QuestionID: q4, Answer: "B"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.Equal(t, 3, result.CorrectAnswers)
	assert.InDelta(t, 7.5, result.Score, 0.001)

	var attempt model.ExamAttempt
	require.NoError(t, db.First(&attempt, result.AttemptID).Error)
	assert.Equal(t, uint(1), attempt.UserID)
	assert.InDelta(t, 7.5, attempt.Score, 0.001)

	attempts, err := exams.GetAttemptsByUser(1)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, "math", attempts[0].Subject)
}

func TestSubmitExamUnknownQuestion(t *testing.T) {
	db := newTestDB(t)
	exams, _ := newExamFixture(db)

	_, err := exams.SubmitExam(dto.ExamSubmitDTO{
		UserID:  1,
		Answers: []dto.ExamAnswerDTO{{QuestionID: 999, Answer: "A"}},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateExamAdaptiveCapsDifficulty(t *testing.T) {
	db := newTestDB(t)
	exams, questions := newExamFixture(db)

	seedQuestion(t, questions, "easy", "A", "math", 1)
	seedQuestion(t, questions, "medium", "A", "math", 2)
	seedQuestion(t, questions, "hard", "A", "math", 3)

	all, err := exams.GenerateExam("math", false, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	adaptive, err := exams.GenerateExam("math", true, 0)
	require.NoError(t, err)
	require.Len(t, adaptive, 2)
	for _, q := range adaptive {
		assert.LessOrEqual(t, q.Difficulty, 2)
	}
}

func TestGenerateExamSubjectAndLimit(t *testing.T) {
	db := newTestDB(t)
	exams, questions := newExamFixture(db)

	seedQuestion(t, questions, "math q", "A", "math", 1)
	seedQuestion(t, questions, "history q1", "A", "history", 1)
	seedQuestion(t, questions, "history q2", "A", "history", 1)

	history, err := exams.GenerateExam("history", false, 0)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	limited, err := exams.GenerateExam("history", false, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
