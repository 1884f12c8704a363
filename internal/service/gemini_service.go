package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/studyquest/backend/config"
	"google.golang.org/api/option"
)

type GeminiService interface {
	// ScoreEssay asks the model for a 0-10 score plus written feedback.
	ScoreEssay(ctx context.Context, text string) (float64, string, error)
}

type geminiService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewGeminiService(cfg *config.Config) (GeminiService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiService will not function.")
		return &geminiService{cfg: cfg, client: nil}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	return &geminiService{client: model, cfg: cfg}, nil
}

var errGeminiUnavailable = fmt.Errorf("ai correction is unavailable")

func (s *geminiService) ScoreEssay(ctx context.Context, text string) (float64, string, error) {
	if s.client == nil {
		log.Warn().Msg("Gemini client not initialized (API key likely missing). Skipping AI correction.")
		return 0, "", errGeminiUnavailable
	}

	prompt := fmt.Sprintf(`You are an essay examiner. Evaluate the following essay for
argument quality, structure, grammar and vocabulary.

Reply in exactly this format:
Score: <number between 0 and 10>
Feedback: <concise feedback for the student>

Essay:
---
%s
---
`, text)

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Error generating content from Gemini")
		return 0, "", fmt.Errorf("gemini request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Interface("geminiResponse", resp).Msg("Gemini response was empty or malformed")
		return 0, "", fmt.Errorf("gemini returned no content")
	}

	output := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			output += string(txt)
		}
	}
	return parseScoreAndFeedback(output)
}

// parseScoreAndFeedback extracts the "Score:" and "Feedback:" lines from the
// model output. The score is clamped to [0, 10].
func parseScoreAndFeedback(output string) (float64, string, error) {
	score := -1.0
	feedback := ""

	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(trimmed, "Score:"); ok {
			value := strings.TrimSpace(after)
			value = strings.TrimSuffix(value, "/10")
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
				score = parsed
			}
		} else if after, ok := strings.CutPrefix(trimmed, "Feedback:"); ok {
			feedback = strings.TrimSpace(after)
		} else if feedback != "" && trimmed != "" {
			feedback += "\n" + trimmed
		}
	}

	if score < 0 {
		return 0, "", fmt.Errorf("could not parse score from model output")
	}
	if score > 10 {
		score = 10
	}
	return score, feedback, nil
}
