package cli

import "github.com/dmitrijs2005/fittrack/internal/client/session"

var (
	anonymousOnly = []session.Surface{session.Login}
	memberOnly    = []session.Surface{session.Dashboard}
	adminOnly     = []session.Surface{session.Admin}
	signedIn      = []session.Surface{session.Dashboard, session.Admin}
)

func (a *App) commands() []command {
	return []command{
		{name: "register", help: "create an account and sign in", surfaces: anonymousOnly, run: a.Register},
		{name: "login", help: "sign in", surfaces: anonymousOnly, run: a.Login},

		{name: "overview", help: "streak, totals, profile and recent workouts", surfaces: memberOnly, run: a.Overview},
		{name: "workouts", help: "workout history grouped by day", surfaces: memberOnly, run: a.Workouts},
		{name: "today", help: "workouts logged today", surfaces: memberOnly, run: a.Today},
		{name: "log", help: "log a workout", surfaces: memberOnly, run: a.LogWorkout},
		{name: "strength", usage: "[sets reps weight]", help: "log a strength set, calories estimated", surfaces: memberOnly, run: a.Strength},
		{name: "edit", usage: "<id>", help: "edit a workout", surfaces: memberOnly, run: a.EditWorkout},
		{name: "delete", usage: "<id>", help: "delete a workout", surfaces: memberOnly, run: a.DeleteWorkout},
		{name: "volume", help: "training volume of strength workouts", surfaces: memberOnly, run: a.Volume},
		{name: "streak", help: "current and longest streak", surfaces: memberOnly, run: a.Streak},
		{name: "rewards", help: "earned rewards", surfaces: memberOnly, run: a.Rewards},
		{name: "profile", help: "body metrics and BMI insight", surfaces: memberOnly, run: a.Profile},
		{name: "setprofile", help: "update body metrics", surfaces: memberOnly, run: a.SetProfile},
		{name: "notifications", help: "your notifications", surfaces: memberOnly, run: a.Notifications},
		{name: "read", usage: "<id>", help: "mark a notification read", surfaces: memberOnly, run: a.MarkRead},
		{name: "ask", usage: "<question>", help: "ask the AI coach", surfaces: memberOnly, run: a.Ask},
		{name: "recommend", help: "personalized workout and diet recommendations", surfaces: memberOnly, run: a.Recommend},
		{name: "progress", usage: "[days]", help: "progress analysis (default 30 days)", surfaces: memberOnly, run: a.Progress},

		{name: "users", help: "list users", surfaces: adminOnly, run: a.Users},
		{name: "deluser", usage: "<id>", help: "delete a user", surfaces: adminOnly, run: a.DeleteUser},
		{name: "notify", usage: "<id> [message]", help: "send a notification to a user", surfaces: adminOnly, run: a.Notify},
		{name: "analytics", help: "platform analytics", surfaces: adminOnly, run: a.Analytics},
		{name: "stats", usage: "<id>", help: "a user's workout totals", surfaces: adminOnly, run: a.UserStats},
		{name: "userworkouts", usage: "<id>", help: "a user's workouts", surfaces: adminOnly, run: a.UserWorkouts},

		{name: "whoami", help: "current identity and token expiry", surfaces: signedIn, run: a.WhoAmI},
		{name: "logout", help: "sign out", surfaces: signedIn, run: a.Logout},
	}
}
