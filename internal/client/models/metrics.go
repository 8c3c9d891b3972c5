package models

// UserMetrics is the body profile stored by the backend. BMI, body fat and
// skeletal muscle mass are computed server-side.
type UserMetrics struct {
	Height             float64 `json:"height"`
	Weight             float64 `json:"weight"`
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
	ActivityLevel      string  `json:"activity_level"`
	BMI                float64 `json:"bmi"`
	BodyFatPercentage  float64 `json:"body_fat_percentage"`
	SkeletalMuscleMass float64 `json:"skeletal_muscle_mass"`
}

func (m *UserMetrics) Validate() error {
	if m.Height <= 0 || m.Weight <= 0 {
		return invalid("metrics need positive height and weight, got %v/%v", m.Height, m.Weight)
	}
	return nil
}

// MetricsInput is the writable part of UserMetrics.
type MetricsInput struct {
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
}

func (m *MetricsInput) Validate() error {
	switch {
	case m.Height <= 0:
		return invalid("height must be positive")
	case m.Weight <= 0:
		return invalid("weight must be positive")
	case m.Age <= 0:
		return invalid("age must be positive")
	}
	return nil
}

// ActivityLevels lists the activity levels offered by the profile form.
var ActivityLevels = []string{"sedentary", "light", "moderate", "active", "very_active"}
