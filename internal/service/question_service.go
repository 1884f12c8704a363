package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	GetQuestion(id uint) (*dto.QuestionResponseDTO, error)
	GetAllQuestions() ([]dto.QuestionResponseDTO, error)
	UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error)
	DeleteQuestion(id uint) error
	// ImportFromSpreadsheet bulk-loads questions from an uploaded xlsx file.
	// Expected columns: statement, choices (";"-separated), correct answer,
	// subject, difficulty. The first row is treated as a header.
	ImportFromSpreadsheet(r io.Reader) (*dto.QuestionImportResultDTO, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	choices, err := encodeChoices(req.Choices)
	if err != nil {
		return nil, err
	}
	question := model.Question{
		Statement:     req.Statement,
		Choices:       choices,
		CorrectAnswer: req.CorrectAnswer,
		Subject:       req.Subject,
		Difficulty:    req.Difficulty,
	}
	if question.Difficulty == 0 {
		question.Difficulty = 1
	}

	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return toQuestionResponse(&question)
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponseDTO, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toQuestionResponse(question)
}

func (s *questionService) GetAllQuestions() ([]dto.QuestionResponseDTO, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionResponseDTO, 0, len(questions))
	for i := range questions {
		q, err := toQuestionResponse(&questions[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *q)
	}
	return resp, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Statement != nil {
		question.Statement = *req.Statement
	}
	if req.Choices != nil {
		choices, err := encodeChoices(*req.Choices)
		if err != nil {
			return nil, err
		}
		question.Choices = choices
	}
	if req.CorrectAnswer != nil {
		question.CorrectAnswer = *req.CorrectAnswer
	}
	if req.Subject != nil {
		question.Subject = *req.Subject
	}
	if req.Difficulty != nil {
		question.Difficulty = *req.Difficulty
	}

	if err := s.repo.Update(question); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}
	return toQuestionResponse(question)
}

func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}

func (s *questionService) ImportFromSpreadsheet(r io.Reader) (*dto.QuestionImportResultDTO, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet rows: %w", err)
	}

	questions := make([]model.Question, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 3 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		choices := strings.Split(row[1], ";")
		for j := range choices {
			choices[j] = strings.TrimSpace(choices[j])
		}
		encoded, err := encodeChoices(choices)
		if err != nil {
			return nil, err
		}

		question := model.Question{
			Statement:     strings.TrimSpace(row[0]),
			Choices:       encoded,
			CorrectAnswer: strings.TrimSpace(row[2]),
			Difficulty:    1,
		}
		if len(row) > 3 {
			question.Subject = strings.TrimSpace(row[3])
		}
		if len(row) > 4 {
			if d, err := strconv.Atoi(strings.TrimSpace(row[4])); err == nil && d > 0 {
				question.Difficulty = d
			}
		}
		questions = append(questions, question)
	}

	if err := s.repo.CreateBatch(questions); err != nil {
		log.Error().Err(err).Int("count", len(questions)).Msg("Failed to import questions")
		return nil, fmt.Errorf("failed to import questions: %w", err)
	}
	log.Info().Int("count", len(questions)).Msg("Imported questions from spreadsheet")
	return &dto.QuestionImportResultDTO{Imported: len(questions)}, nil
}

// Choices live in a text column as a JSON array.
func encodeChoices(choices []string) (string, error) {
	raw, err := json.Marshal(choices)
	if err != nil {
		return "", fmt.Errorf("failed to encode choices: %w", err)
	}
	return string(raw), nil
}

func decodeChoices(encoded string) ([]string, error) {
	if encoded == "" {
		return []string{}, nil
	}
	var choices []string
	if err := json.Unmarshal([]byte(encoded), &choices); err != nil {
		return nil, fmt.Errorf("failed to decode choices: %w", err)
	}
	return choices, nil
}

func toQuestionResponse(question *model.Question) (*dto.QuestionResponseDTO, error) {
	choices, err := decodeChoices(question.Choices)
	if err != nil {
		return nil, err
	}
	return &dto.QuestionResponseDTO{
		ID:            question.ID,
		Statement:     question.Statement,
		Choices:       choices,
		CorrectAnswer: question.CorrectAnswer,
		Subject:       question.Subject,
		Difficulty:    question.Difficulty,
	}, nil
}
