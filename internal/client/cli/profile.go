package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/services"
)

func printMetrics(m *models.UserMetrics) {
	printlnFn(fmt.Sprintf("Height: %v cm, weight: %v kg, age: %d, gender: %s, activity: %s",
		m.Height, m.Weight, m.Age, m.Gender, m.ActivityLevel))
	printlnFn(fmt.Sprintf("BMI: %.2f, body fat: %.1f%%, skeletal muscle: %.1f kg",
		m.BMI, m.BodyFatPercentage, m.SkeletalMuscleMass))
	in := services.BMIInsight(m.BMI)
	printlnFn(in.Title + ": " + in.Message)
}

func (a *App) Profile(ctx context.Context, _ []string) error {
	if u := a.session.User(); u != nil {
		printlnFn(fmt.Sprintf("%s <%s>", u.Username, u.Email))
	}
	m, err := a.profile.Get(ctx)
	if err != nil {
		return err
	}
	if m == nil {
		printlnFn("No profile yet. Use setprofile to add your body metrics.")
		return nil
	}
	printMetrics(m)
	return nil
}

func (a *App) SetProfile(ctx context.Context, _ []string) error {
	cur, err := a.profile.Get(ctx)
	if err != nil {
		return err
	}
	def := models.MetricsInput{Height: 170, Weight: 70, Age: 25, Gender: "male", ActivityLevel: "moderate"}
	if cur != nil {
		def = models.MetricsInput{Height: cur.Height, Weight: cur.Weight, Age: cur.Age, Gender: cur.Gender, ActivityLevel: cur.ActivityLevel}
	}

	var in models.MetricsInput
	if in.Height, err = askFloat(a.reader, a.out, "Height (cm)", def.Height); err != nil {
		return err
	}
	if in.Weight, err = askFloat(a.reader, a.out, "Weight (kg)", def.Weight); err != nil {
		return err
	}
	if in.Age, err = askInt(a.reader, a.out, "Age", def.Age); err != nil {
		return err
	}
	if in.Gender, err = askText(a.reader, a.out, "Gender (male, female, other)", def.Gender); err != nil {
		return err
	}
	in.Gender = strings.ToLower(in.Gender)
	level, err := askText(a.reader, a.out, "Activity level ("+strings.Join(models.ActivityLevels, ", ")+")", def.ActivityLevel)
	if err != nil {
		return err
	}
	if !slices.Contains(models.ActivityLevels, level) {
		return fmt.Errorf("%w: unknown activity level %q", errBadInput, level)
	}
	in.ActivityLevel = level

	m, err := a.profile.Save(ctx, in)
	if err != nil {
		return err
	}
	printlnFn("Profile saved.")
	printMetrics(m)
	return nil
}
