package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/services"
)

func formatWorkout(w models.Workout) string {
	s := fmt.Sprintf("#%d %s, %d min, %s, %d kcal", w.ID, w.WorkoutType, w.Duration, w.Intensity, w.CaloriesBurned)
	if n := w.NotesText(); n != "" {
		s += " (" + n + ")"
	}
	return s
}

func printWorkouts(ws []models.Workout) {
	if len(ws) == 0 {
		printlnFn("No workouts yet.")
		return
	}
	for _, w := range ws {
		printlnFn("  " + formatWorkout(w))
	}
}

func (a *App) Overview(ctx context.Context, _ []string) error {
	ov, err := services.LoadOverview(ctx, a.overview, a.log)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Current streak: %d days (longest %d)", ov.Streak.CurrentStreak, ov.Streak.LongestStreak))
	printlnFn(fmt.Sprintf("Workouts: %d, calories burned: %d, minutes: %d", len(ov.Workouts), ov.TotalCalories, ov.TotalMinutes))
	printlnFn(fmt.Sprintf("Workouts today: %d", a.workouts.TodayCount(ctx)))
	printlnFn(fmt.Sprintf("Rewards earned: %d", len(ov.Rewards)))
	if ov.Metrics == nil {
		printlnFn("No profile yet. Use setprofile to add your body metrics.")
	} else {
		printlnFn(fmt.Sprintf("Weight: %v kg, BMI: %.2f (%s)", ov.Metrics.Weight, ov.Metrics.BMI, services.BMIInsight(ov.Metrics.BMI).Title))
	}
	if len(ov.Recent) > 0 {
		printlnFn("Recent activity:")
		for _, w := range ov.Recent {
			printlnFn(fmt.Sprintf("  %s  %4d kcal  %3d min", w.Date.Format("01/02"), w.CaloriesBurned, w.Duration))
		}
	}
	return nil
}

func (a *App) Workouts(ctx context.Context, _ []string) error {
	groups, err := a.workouts.History(ctx)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		printlnFn("No workouts yet. Use log or strength to add one.")
		return nil
	}
	for _, g := range groups {
		printlnFn(g.Date)
		printWorkouts(g.Workouts)
	}
	return nil
}

func (a *App) Today(ctx context.Context, _ []string) error {
	ws, err := a.workouts.Today(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Workouts today: %d", len(ws)))
	printWorkouts(ws)
	return nil
}

// askWorkout fills a WorkoutInput interactively, offering cur as defaults.
func (a *App) askWorkout(cur models.WorkoutInput) (models.WorkoutInput, error) {
	printlnFn("Types: " + strings.Join(models.PredefinedWorkoutTypes, ", ") + " (or any custom type)")
	typ, err := askText(a.reader, a.out, "Workout type", cur.WorkoutType)
	if err != nil {
		return cur, err
	}
	if n, err := strconv.Atoi(typ); err == nil && n >= 1 && n <= len(models.PredefinedWorkoutTypes) {
		typ = models.PredefinedWorkoutTypes[n-1]
	}
	if !services.IsPredefinedType(typ) && strings.TrimSpace(typ) != "" {
		printlnFn(fmt.Sprintf("Using custom type %q.", strings.TrimSpace(typ)))
	}

	dur, err := askInt(a.reader, a.out, "Duration (minutes)", cur.Duration)
	if err != nil {
		return cur, err
	}

	intensity := cur.Intensity
	if intensity == "" {
		intensity = models.IntensityModerate
	}
	intensity, err = askText(a.reader, a.out, "Intensity (low, moderate, high)", intensity)
	if err != nil {
		return cur, err
	}
	if !slices.Contains([]string{models.IntensityLow, models.IntensityModerate, models.IntensityHigh}, intensity) {
		return cur, fmt.Errorf("%w: intensity must be low, moderate or high", errBadInput)
	}

	cal, err := askInt(a.reader, a.out, "Calories burned", cur.CaloriesBurned)
	if err != nil {
		return cur, err
	}

	curNotes := ""
	if cur.Notes != nil {
		curNotes = *cur.Notes
	}
	notes, err := askText(a.reader, a.out, "Notes (e.g. 3x10@40kg)", curNotes)
	if err != nil {
		return cur, err
	}

	in := models.WorkoutInput{WorkoutType: typ, Duration: dur, Intensity: intensity, CaloriesBurned: cal}
	if notes != "" {
		in.Notes = &notes
	}
	return in, nil
}

func (a *App) LogWorkout(ctx context.Context, _ []string) error {
	in, err := a.askWorkout(models.WorkoutInput{})
	if err != nil {
		return err
	}
	ws, err := a.workouts.Save(ctx, 0, in)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Workout logged. You have %d workouts.", len(ws)))
	return nil
}

// Strength logs "sets reps weight" as a Gym workout with estimated calories
// and duration.
func (a *App) Strength(ctx context.Context, args []string) error {
	var set services.StrengthSet
	if len(args) == 3 {
		parsed, err := services.ParseStrengthNotes(fmt.Sprintf("%sx%s@%s", args[0], args[1], args[2]))
		if err != nil {
			return fmt.Errorf("%w: usage strength <sets> <reps> <weight>", errBadInput)
		}
		set = parsed
	} else {
		var err error
		if set.Sets, err = askInt(a.reader, a.out, "Sets", 3); err != nil {
			return err
		}
		if set.Reps, err = askInt(a.reader, a.out, "Reps", 10); err != nil {
			return err
		}
		if set.Weight, err = askFloat(a.reader, a.out, "Weight (kg)", 20); err != nil {
			return err
		}
	}

	in, err := set.Input(models.IntensityModerate)
	if err != nil {
		return err
	}
	if _, err := a.workouts.Save(ctx, 0, in); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Logged %s: about %d kcal in %d min.", set.Notes(), in.CaloriesBurned, in.Duration))
	return nil
}

func (a *App) EditWorkout(ctx context.Context, args []string) error {
	id, err := intArg(a.reader, a.out, args, "Workout id")
	if err != nil {
		return err
	}
	ws, err := a.workouts.List(ctx)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(ws, func(w models.Workout) bool { return w.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: no workout #%d", errBadInput, id)
	}

	in, err := a.askWorkout(ws[i].Input())
	if err != nil {
		return err
	}
	if _, err := a.workouts.Save(ctx, id, in); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Workout #%d updated.", id))
	return nil
}

func (a *App) DeleteWorkout(ctx context.Context, args []string) error {
	id, err := intArg(a.reader, a.out, args, "Workout id")
	if err != nil {
		return err
	}
	ws, err := a.workouts.Delete(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Workout #%d deleted. %d left.", id, len(ws)))
	return nil
}

func (a *App) Volume(ctx context.Context, _ []string) error {
	ws, err := a.workouts.List(ctx)
	if err != nil {
		return err
	}
	points := services.VolumeSeries(ws)
	if len(points) == 0 {
		printlnFn("No strength workouts with sets x reps @ weight notes yet.")
		return nil
	}
	for _, p := range points {
		printlnFn(fmt.Sprintf("  %-12s %8.1f kg", p.Name, p.Volume))
	}
	return nil
}

func (a *App) Streak(ctx context.Context, _ []string) error {
	st, err := a.workouts.Streak(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Current streak: %d days, longest: %d days", st.CurrentStreak, st.LongestStreak))
	return nil
}

func (a *App) Rewards(ctx context.Context, _ []string) error {
	rs, err := a.workouts.Rewards(ctx)
	if err != nil {
		return err
	}
	if len(rs) == 0 {
		printlnFn("No rewards yet. Keep going!")
		return nil
	}
	for _, r := range rs {
		printlnFn(fmt.Sprintf("  %s: %s", r.Title, r.Description))
	}
	return nil
}
