package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"github.com/xuri/excelize/v2"
)

func TestQuestionChoicesRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(repository.NewQuestionRepository(db))

	created, err := svc.CreateQuestion(dto.QuestionCreateDTO{
		Statement:     "Which planet is closest to the sun?",
		Choices:       []string{"Mercury", "Venus", "Earth"},
		CorrectAnswer: "Mercury",
		Subject:       "science",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Difficulty)

	fetched, err := svc.GetQuestion(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mercury", "Venus", "Earth"}, fetched.Choices)

	var stored model.Question
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.JSONEq(t, `["Mercury","Venus","Earth"]`, stored.Choices)
	assert.True(t, stored.CheckAnswer("Mercury"))
	assert.False(t, stored.CheckAnswer("Venus"))
}

func TestUpdateQuestionSparse(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(repository.NewQuestionRepository(db))

	created, err := svc.CreateQuestion(dto.QuestionCreateDTO{
		Statement:     "Old statement",
		Choices:       []string{"A", "B"},
		CorrectAnswer: "A",
		Difficulty:    2,
	})
	require.NoError(t, err)

	newStatement := "New statement"
	updated, err := svc.UpdateQuestion(created.ID, dto.QuestionUpdateDTO{Statement: &newStatement})
	require.NoError(t, err)
	assert.Equal(t, "New statement", updated.Statement)
	assert.Equal(t, []string{"A", "B"}, updated.Choices)
	assert.Equal(t, 2, updated.Difficulty)
}

func buildImportSheet(t *testing.T, rows [][]interface{}) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	return f
}

func TestImportFromSpreadsheet(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(repository.NewQuestionRepository(db))

	f := buildImportSheet(t, [][]interface{}{
		{"Statement", "Choices", "Correct", "Subject", "Difficulty"},
		{"What is 2+2?", "3; 4; 5", "4", "math", "2"},
		{"Capital of Brazil?", "Rio;Brasilia", "Brasilia", "geography"},
		{"", "A;B", "A"},
		{"only statement"},
	})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	result, err := svc.ImportFromSpreadsheet(buf)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)

	questions, err := svc.GetAllQuestions()
	require.NoError(t, err)
	require.Len(t, questions, 2)

	byStatement := map[string]dto.QuestionResponseDTO{}
	for _, q := range questions {
		byStatement[q.Statement] = q
	}

	math := byStatement["What is 2+2?"]
	assert.Equal(t, []string{"3", "4", "5"}, math.Choices)
	assert.Equal(t, "4", math.CorrectAnswer)
	assert.Equal(t, "math", math.Subject)
	assert.Equal(t, 2, math.Difficulty)

	geo := byStatement["Capital of Brazil?"]
	assert.Equal(t, []string{"Rio", "Brasilia"}, geo.Choices)
	assert.Equal(t, 1, geo.Difficulty)
}

func TestImportFromSpreadsheetRejectsGarbage(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(repository.NewQuestionRepository(db))

	_, err := svc.ImportFromSpreadsheet(strings.NewReader("not a spreadsheet"))
	assert.Error(t, err)
}
