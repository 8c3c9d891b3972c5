package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) Users(ctx context.Context, _ []string) error {
	users, err := a.admin.Users(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%d users", len(users)))
	for _, u := range users {
		role := ""
		if u.IsAdmin {
			role = " [admin]"
		}
		printlnFn(fmt.Sprintf("  #%d %s <%s>%s joined %s", u.ID, u.Username, u.Email, role, u.CreatedAt.DateKey()))
	}
	return nil
}

func (a *App) DeleteUser(ctx context.Context, args []string) error {
	id, err := intArg(a.reader, a.out, args, "User id")
	if err != nil {
		return err
	}
	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete user #%d and all their data? (y/N)", id), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		printlnFn("Cancelled.")
		return nil
	}
	users, err := a.admin.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("User #%d deleted, %d users left.", id, len(users)))
	return nil
}

func (a *App) Notify(ctx context.Context, args []string) error {
	id, err := intArg(a.reader, a.out, args, "User id")
	if err != nil {
		return err
	}
	msg := ""
	if len(args) > 1 {
		msg = strings.Join(args[1:], " ")
	} else if msg, err = getSimpleText(a.reader, "Message", a.out); err != nil {
		return err
	}
	if err := a.admin.Notify(ctx, id, msg); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Notification sent to user #%d.", id))
	return nil
}

func (a *App) Analytics(ctx context.Context, _ []string) error {
	an, err := a.admin.Analytics(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Users: %d (active %d)", an.TotalUsers, an.ActiveUsers))
	printlnFn(fmt.Sprintf("Workouts: %d, %.2f per user", an.TotalWorkouts, an.AverageWorkoutsPerUser))
	return nil
}

func (a *App) UserStats(ctx context.Context, args []string) error {
	id, err := intArg(a.reader, a.out, args, "User id")
	if err != nil {
		return err
	}
	s, err := a.admin.UserStats(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%s (#%d): %d workouts, %d min, %d kcal",
		s.Username, s.UserID, s.TotalWorkouts, s.TotalWorkoutMinutes, s.TotalCaloriesBurned))
	return nil
}

func (a *App) UserWorkouts(ctx context.Context, args []string) error {
	id, err := intArg(a.reader, a.out, args, "User id")
	if err != nil {
		return err
	}
	ws, err := a.admin.UserWorkouts(ctx, id)
	if err != nil {
		return err
	}
	printWorkouts(ws)
	return nil
}
