package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/dto"
	"github.com/studyquest/backend/internal/model"
	"github.com/studyquest/backend/internal/repository"
	"gorm.io/gorm"
)

// adaptiveMaxDifficulty caps question difficulty for adaptive exams.
const adaptiveMaxDifficulty = 2

type ExamService interface {
	GenerateExam(subject string, adaptive bool, limit int) ([]dto.QuestionResponseDTO, error)
	SubmitExam(req dto.ExamSubmitDTO) (*dto.ExamResultDTO, error)
	GetAttemptsByUser(userID uint) ([]dto.ExamAttemptSummaryDTO, error)
}

type examService struct {
	questionRepo repository.QuestionRepository
	attemptRepo  repository.ExamAttemptRepository
}

func NewExamService(questionRepo repository.QuestionRepository, attemptRepo repository.ExamAttemptRepository) ExamService {
	return &examService{questionRepo: questionRepo, attemptRepo: attemptRepo}
}

func (s *examService) GenerateExam(subject string, adaptive bool, limit int) ([]dto.QuestionResponseDTO, error) {
	maxDifficulty := 0
	if adaptive {
		maxDifficulty = adaptiveMaxDifficulty
	}

	questions, err := s.questionRepo.FindFiltered(subject, maxDifficulty, limit)
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

// SubmitExam grades the submitted answers against the stored keys, persists
// the attempt, and returns the result. Score is on a 0-10 scale.
func (s *examService) SubmitExam(req dto.ExamSubmitDTO) (*dto.ExamResultDTO, error) {
	total := len(req.Answers)
	correct := 0
	for _, answer := range req.Answers {
		question, err := s.questionRepo.FindByID(answer.QuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if question.CheckAnswer(answer.Answer) {
			correct++
		}
	}

	score := 0.0
	if total > 0 {
		score = float64(correct) / float64(total) * 10
	}

	attempt := model.ExamAttempt{
		UserID:         req.UserID,
		Subject:        req.Subject,
		TotalQuestions: total,
		CorrectAnswers: correct,
		Score:          score,
		TakenAt:        time.Now(),
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Msg("Failed to persist exam attempt")
		return nil, fmt.Errorf("failed to persist exam attempt: %w", err)
	}

	return &dto.ExamResultDTO{
		AttemptID:      attempt.ID,
		UserID:         attempt.UserID,
		Subject:        attempt.Subject,
		TotalQuestions: attempt.TotalQuestions,
		CorrectAnswers: attempt.CorrectAnswers,
		Score:          attempt.Score,
		TakenAt:        attempt.TakenAt,
	}, nil
}

func (s *examService) GetAttemptsByUser(userID uint) ([]dto.ExamAttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ExamAttemptSummaryDTO, 0, len(attempts))
	copier.Copy(&resp, &attempts)
	return resp, nil
}
