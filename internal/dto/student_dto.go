package dto

type StudentResponseDTO struct {
	ID              uint    `json:"id"`
	UserID          uint    `json:"user_id"`
	IntensiveMode   bool    `json:"intensive_mode"`
	Diagnostic      string  `json:"diagnostic,omitempty"`
	StudyPlanID     *uint   `json:"study_plan_id,omitempty"`
	Ranking         int     `json:"ranking"`
	XP              int     `json:"xp"`
	ProgressPercent float64 `json:"progress_percent"`
}

type StudentUpdateDTO struct {
	IntensiveMode   *bool    `json:"intensive_mode"`
	Diagnostic      *string  `json:"diagnostic"`
	StudyPlanID     *uint    `json:"study_plan_id"`
	Ranking         *int     `json:"ranking"`
	XP              *int     `json:"xp"`
	ProgressPercent *float64 `json:"progress_percent"`
}

type IntensiveModeDTO struct {
	Enabled bool `json:"enabled"`
}

type AddXPDTO struct {
	XP int `json:"xp" binding:"required,gt=0"`
}

type XPResultDTO struct {
	XP int `json:"xp"`
}

type RankingStatusDTO struct {
	Ranking int `json:"ranking"`
	XP      int `json:"xp"`
}

// RankingEntryDTO is one row of the global XP leaderboard.
type RankingEntryDTO struct {
	UserID   uint   `json:"id"`
	Name     string `json:"name"`
	XP       int    `json:"xp"`
	PhotoURL string `json:"photo_url,omitempty"`
}
