package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/fittrack/internal/client/client"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
)

// DefaultRecommendationPrompt is sent when the user asks for
// recommendations without a question.
const DefaultRecommendationPrompt = "Generate personalized workout and diet recommendations"

var ErrEmptyPrompt = errors.New("prompt must not be empty")

type Assistant struct {
	api client.AIAPI
}

func NewAssistant(api client.AIAPI) *Assistant {
	return &Assistant{api: api}
}

func (a *Assistant) Recommend(ctx context.Context) (*models.AIRecommendation, error) {
	return a.api.Recommendations(ctx, DefaultRecommendationPrompt)
}

func (a *Assistant) Ask(ctx context.Context, prompt string) (*models.AIRecommendation, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}
	return a.api.Recommendations(ctx, prompt)
}

// Progress analyses the last days days; 0 means the server default window.
func (a *Assistant) Progress(ctx context.Context, days int) (*models.ProgressAnalysis, error) {
	return a.api.ProgressAnalysis(ctx, days)
}
