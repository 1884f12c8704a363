package cron

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/internal/repository"
)

// ReviewReminder runs a daily job that reports how many flashcards are due
// for review.
type ReviewReminder struct {
	scheduler *cron.Cron
	repo      repository.FlashcardRepository
}

func NewReviewReminder(repo repository.FlashcardRepository) *ReviewReminder {
	return &ReviewReminder{scheduler: cron.New(), repo: repo}
}

func (r *ReviewReminder) Start() error {
	_, err := r.scheduler.AddFunc("@daily", func() {
		count, err := r.repo.CountDue(time.Now())
		if err != nil {
			log.Error().Err(err).Msg("Failed to count due flashcards")
			return
		}
		log.Info().Int64("due", count).Msg("Flashcards due for review")
	})
	if err != nil {
		return err
	}
	r.scheduler.Start()
	return nil
}

func (r *ReviewReminder) Stop() {
	r.scheduler.Stop()
}
