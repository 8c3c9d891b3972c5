package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/fittrack/internal/client/client"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
)

// Insight is a BMI band with the advice shown for it.
type Insight struct {
	Title   string
	Message string
}

// BMIInsight maps a BMI to its band: below 18.5, below 25, below 30, rest.
func BMIInsight(bmi float64) Insight {
	switch {
	case bmi < 18.5:
		return Insight{
			Title:   "Underweight",
			Message: "You are underweight. Focus on strength training, proper nutrition, and a calorie surplus diet.",
		}
	case bmi < 25:
		return Insight{
			Title:   "Healthy BMI",
			Message: "Great job! You have a healthy BMI. Maintain consistency with balanced workouts and nutrition.",
		}
	case bmi < 30:
		return Insight{
			Title:   "Overweight",
			Message: "You are slightly overweight. Focus on fat-loss workouts, cardio, and controlled calorie intake.",
		}
	}
	return Insight{
		Title:   "Obese",
		Message: "Your BMI is high. Start with low-impact workouts, build consistency, and consult a professional if needed.",
	}
}

type ProfileService interface {
	// Get returns nil, nil when the user has not set up a profile yet.
	Get(ctx context.Context) (*models.UserMetrics, error)
	Save(ctx context.Context, in models.MetricsInput) (*models.UserMetrics, error)
}

type profileService struct {
	api client.MetricsAPI
}

func NewProfileService(api client.MetricsAPI) ProfileService {
	return &profileService{api: api}
}

func (s *profileService) Get(ctx context.Context) (*models.UserMetrics, error) {
	m, err := s.api.GetMetrics(ctx)
	if errors.Is(err, client.ErrNotFound) {
		return nil, nil
	}
	return m, err
}

func (s *profileService) Save(ctx context.Context, in models.MetricsInput) (*models.UserMetrics, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.api.SaveMetrics(ctx, in)
}
