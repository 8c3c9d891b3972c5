package models

import "strings"

// AI response modes reported by the backend.
const (
	AIModeAskAnything        = "ask_anything"
	AIModeAutoRecommendation = "auto_recommendation"
)

// AIRequest is the body of POST /ai/recommendations.
type AIRequest struct {
	Prompt string `json:"prompt"`
}

// AIRecommendation is the assistant's answer.
type AIRecommendation struct {
	AIResponse string `json:"ai_response"`
	Mode       string `json:"mode,omitempty"`
}

func (a *AIRecommendation) Validate() error {
	if strings.TrimSpace(a.AIResponse) == "" {
		return invalid("empty ai_response")
	}
	return nil
}

// ProgressAnalysis is the result of GET /ai/progress-analysis. When the user
// has no workouts in the window only Message and DaysAnalyzed are set.
type ProgressAnalysis struct {
	Message             string  `json:"message,omitempty"`
	DaysAnalyzed        int     `json:"days_analyzed,omitempty"`
	Period              string  `json:"period,omitempty"`
	TotalWorkouts       int     `json:"total_workouts"`
	TotalMinutes        int     `json:"total_minutes"`
	TotalCaloriesBurned int     `json:"total_calories_burned"`
	ConsistencyScore    float64 `json:"consistency_score"`
}

// HasData reports whether the analysis covers at least one workout.
func (p *ProgressAnalysis) HasData() bool {
	return p.Period != ""
}

func (p *ProgressAnalysis) Validate() error {
	if p.Message == "" && p.Period == "" {
		return invalid("progress analysis has neither message nor period")
	}
	if p.ConsistencyScore < 0 || p.ConsistencyScore > 100 {
		return invalid("consistency score %v out of range", p.ConsistencyScore)
	}
	return nil
}
