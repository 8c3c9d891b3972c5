package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
)

func printAI(r *models.AIRecommendation) {
	printlnFn(r.AIResponse)
}

func (a *App) Ask(ctx context.Context, args []string) error {
	q := strings.Join(args, " ")
	if q == "" {
		var err error
		if q, err = getSimpleText(a.reader, "Ask the coach", a.out); err != nil {
			return err
		}
	}
	r, err := a.assistant.Ask(ctx, q)
	if err != nil {
		return err
	}
	printAI(r)
	return nil
}

func (a *App) Recommend(ctx context.Context, _ []string) error {
	printlnFn("Generating recommendations...")
	r, err := a.assistant.Recommend(ctx)
	if err != nil {
		return err
	}
	printAI(r)
	return nil
}

func (a *App) Progress(ctx context.Context, args []string) error {
	days := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: days must be a positive number", errBadInput)
		}
		days = n
	}
	p, err := a.assistant.Progress(ctx, days)
	if err != nil {
		return err
	}
	if !p.HasData() {
		printlnFn(fmt.Sprintf("%s (last %d days).", p.Message, p.DaysAnalyzed))
		return nil
	}
	printlnFn(fmt.Sprintf("Period: %s", p.Period))
	printlnFn(fmt.Sprintf("Workouts: %d, minutes: %d, calories burned: %d",
		p.TotalWorkouts, p.TotalMinutes, p.TotalCaloriesBurned))
	printlnFn(fmt.Sprintf("Consistency: %.1f%%", p.ConsistencyScore))
	return nil
}
