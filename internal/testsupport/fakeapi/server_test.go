package fakeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/client"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type harness struct {
	srv   *Server
	url   string
	token string
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	srv := New(append([]Option{WithClock(func() time.Time { return clock })}, opts...)...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return &harness{srv: srv, url: ts.URL}
}

// as returns a client carrying the token of username/password.
func (h *harness) as(t *testing.T, username, password string) *client.RESTClient {
	t.Helper()
	var token string
	c := client.NewRESTClient(h.url, client.WithTokenSource(client.TokenSourceFunc(func(context.Context) (string, error) {
		return token, nil
	})))
	tok, err := c.Login(context.Background(), username, password)
	require.NoError(t, err)
	token = tok
	return c
}

func (h *harness) member(t *testing.T, name string) (models.User, *client.RESTClient) {
	t.Helper()
	u, err := h.srv.CreateUser(models.RegisterInput{Email: name + "@example.com", Username: name, Password: "pw-" + name})
	require.NoError(t, err)
	return u, h.as(t, name, "pw-"+name)
}

func (h *harness) admin(t *testing.T) *client.RESTClient {
	t.Helper()
	_, err := h.srv.CreateUser(models.RegisterInput{Email: "root@example.com", Username: "root", Password: "pw-root", IsAdmin: true})
	require.NoError(t, err)
	return h.as(t, "root", "pw-root")
}

func TestAuth_RegisterLoginMe(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	anon := client.NewRESTClient(h.url)

	u, err := anon.Register(ctx, models.RegisterInput{Email: "a@example.com", Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.False(t, u.IsAdmin)

	_, err = anon.Register(ctx, models.RegisterInput{Email: "A@example.com", Username: "other", Password: "x"})
	require.ErrorIs(t, err, client.ErrValidation)
	assert.Equal(t, "Email already registered", client.Message(err, ""))

	_, err = anon.Register(ctx, models.RegisterInput{Email: "b@example.com", Username: "alice", Password: "x"})
	assert.Equal(t, "Username already taken", client.Message(err, ""))

	_, err = anon.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, "Incorrect username or password", client.Message(err, ""))

	c := h.as(t, "alice", "secret")
	me, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID, me.ID)

	_, err = anon.CurrentUser(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestAuth_ExpiredAndForeignTokens(t *testing.T) {
	h := newHarness(t, WithTokenTTL(time.Minute))
	other := New(WithClock(func() time.Time { return clock }))

	token, err := other.issueToken("alice")
	require.NoError(t, err)
	_, err = h.srv.parseToken(token)
	require.Error(t, err)

	h.srv.now = func() time.Time { return clock.Add(-time.Hour) }
	stale, err := h.srv.issueToken("alice")
	require.NoError(t, err)
	h.srv.now = func() time.Time { return clock }
	_, err = h.srv.parseToken(stale)
	require.Error(t, err)
}

func TestLogin_RequiresFormFields(t *testing.T) {
	h := newHarness(t)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("username=alice"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h.srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"loc":["body","password"]`)
}

func TestWorkouts_CRUDAndOwnership(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, alice := h.member(t, "alice")
	_, bob := h.member(t, "bob")

	notes := "3x10@40kg"
	w, err := alice.CreateWorkout(ctx, models.WorkoutInput{WorkoutType: "Gym", Duration: 6, Intensity: "moderate", CaloriesBurned: 120, Notes: &notes})
	require.NoError(t, err)
	assert.True(t, clock.Equal(w.Date.Time))

	_, err = bob.UpdateWorkout(ctx, w.ID, models.WorkoutInput{WorkoutType: "Yoga"})
	require.ErrorIs(t, err, client.ErrNotFound)
	assert.Equal(t, "Workout not found", client.Message(err, ""))
	require.ErrorIs(t, bob.DeleteWorkout(ctx, w.ID), client.ErrNotFound)

	upd, err := alice.UpdateWorkout(ctx, w.ID, models.WorkoutInput{WorkoutType: "Yoga", Duration: 30, Intensity: "low"})
	require.NoError(t, err)
	assert.Equal(t, "Yoga", upd.WorkoutType)
	assert.Nil(t, upd.Notes)

	today, err := alice.TodayWorkouts(ctx)
	require.NoError(t, err)
	assert.Len(t, today, 1)

	require.NoError(t, alice.DeleteWorkout(ctx, w.ID))
	ws, err := alice.ListWorkouts(ctx, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, ws)

	_, err = alice.CreateWorkout(ctx, models.WorkoutInput{WorkoutType: " "})
	require.Error(t, err)
}

func TestWorkouts_ListOrderAndPaging(t *testing.T) {
	h := newHarness(t)
	u, c := h.member(t, "alice")
	for i := range 5 {
		h.srv.AddWorkout(u.ID, models.WorkoutInput{WorkoutType: "Running", Duration: i + 1}, clock.AddDate(0, 0, -i))
	}

	ws, err := c.ListWorkouts(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, ws, 2)
	assert.Equal(t, 2, ws[0].Duration)
	assert.Equal(t, 3, ws[1].Duration)
}

func TestStreakAndRewards(t *testing.T) {
	h := newHarness(t)
	u, c := h.member(t, "alice")
	ctx := context.Background()

	for _, back := range []int{0, 0, 1, 2, 5, 6, 7, 8} {
		h.srv.AddWorkout(u.ID, models.WorkoutInput{WorkoutType: "Walking"}, clock.AddDate(0, 0, -back))
	}

	st, err := c.Streak(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StreakData{CurrentStreak: 3, LongestStreak: 4}, *st)

	rs, err := c.Rewards(ctx)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, "🔥 1 Week Streak!", rs[0].Title)
	assert.Contains(t, rs[0].Description, "7 workouts")
}

func TestComputeStreak(t *testing.T) {
	assert.Equal(t, models.StreakData{}, computeStreak(nil, clock))

	yesterday := []time.Time{clock.AddDate(0, 0, -1), clock.AddDate(0, 0, -2)}
	assert.Equal(t, models.StreakData{CurrentStreak: 0, LongestStreak: 2}, computeStreak(yesterday, clock))

	single := []time.Time{clock.AddDate(0, 0, -10)}
	assert.Equal(t, models.StreakData{CurrentStreak: 0, LongestStreak: 1}, computeStreak(single, clock))
}

func TestMetrics(t *testing.T) {
	h := newHarness(t)
	_, c := h.member(t, "alice")
	ctx := context.Background()

	_, err := c.GetMetrics(ctx)
	require.ErrorIs(t, err, client.ErrNotFound)
	assert.Equal(t, "Metrics not found. Please set up your profile first.", client.Message(err, ""))

	m, err := c.SaveMetrics(ctx, models.MetricsInput{Height: 180, Weight: 81, Age: 30, Gender: "male", ActivityLevel: "active"})
	require.NoError(t, err)
	assert.Equal(t, 25.0, m.BMI)
	assert.InDelta(t, 20.7, m.BodyFatPercentage, 0.001)
	assert.InDelta(t, 60.195, m.SkeletalMuscleMass, 0.01)

	got, err := c.GetMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestDeriveMetrics_Female(t *testing.T) {
	m := deriveMetrics(models.MetricsInput{Height: 160, Weight: 64, Age: 40, Gender: "female"})
	assert.Equal(t, 25.0, m.BMI)
	assert.InDelta(t, 33.8, m.BodyFatPercentage, 0.001)
	assert.InDelta(t, 72.12, m.SkeletalMuscleMass, 0.01)
}

func TestNotifications(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	u, alice := h.member(t, "alice")
	_, bob := h.member(t, "bob")
	root := h.admin(t)

	require.NoError(t, root.AdminSendNotification(ctx, u.ID, "first"))
	require.NoError(t, root.AdminSendNotification(ctx, u.ID, "second"))
	err := root.AdminSendNotification(ctx, 999, "nobody")
	require.ErrorIs(t, err, client.ErrNotFound)

	ns, err := alice.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, ns, 2)
	assert.Equal(t, "second", ns[0].Message)

	require.ErrorIs(t, bob.MarkNotificationRead(ctx, ns[0].ID), client.ErrNotFound)
	require.NoError(t, alice.MarkNotificationRead(ctx, ns[0].ID))

	ns, err = alice.Notifications(ctx)
	require.NoError(t, err)
	assert.True(t, ns[0].IsRead)
	assert.False(t, ns[1].IsRead)
}

func TestAI(t *testing.T) {
	var prompts []string
	h := newHarness(t, WithGenerator(func(p string) (string, error) {
		prompts = append(prompts, p)
		if strings.Contains(p, "fail") {
			return "", errors.New("quota exceeded")
		}
		return "plan", nil
	}))
	u, c := h.member(t, "alice")
	ctx := context.Background()

	r, err := c.Recommendations(ctx, "How much protein?")
	require.NoError(t, err)
	assert.Equal(t, models.AIModeAskAnything, r.Mode)
	assert.Equal(t, "How much protein?", prompts[0])

	h.srv.AddWorkout(u.ID, models.WorkoutInput{WorkoutType: "Cycling", Duration: 40, Intensity: "high"}, clock)
	r, err = c.Recommendations(ctx, defaultPrompt)
	require.NoError(t, err)
	assert.Equal(t, models.AIModeAutoRecommendation, r.Mode)
	assert.Contains(t, prompts[1], "Age: N/A")
	assert.Contains(t, prompts[1], "Cycling - 40 min - high")

	_, err = c.Recommendations(ctx, "please fail")
	require.ErrorIs(t, err, client.ErrServer)
	assert.Equal(t, "AI generation failed: quota exceeded", client.Message(err, ""))
}

func TestProgressAnalysis(t *testing.T) {
	h := newHarness(t)
	u, c := h.member(t, "alice")
	ctx := context.Background()

	p, err := c.ProgressAnalysis(ctx, 10)
	require.NoError(t, err)
	assert.False(t, p.HasData())
	assert.Equal(t, 10, p.DaysAnalyzed)

	h.srv.AddWorkout(u.ID, models.WorkoutInput{WorkoutType: "Running", Duration: 30, CaloriesBurned: 300}, clock.AddDate(0, 0, -1))
	h.srv.AddWorkout(u.ID, models.WorkoutInput{WorkoutType: "Running", Duration: 20, CaloriesBurned: 200}, clock.AddDate(0, 0, -20))

	p, err = c.ProgressAnalysis(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "10 days", p.Period)
	assert.Equal(t, 1, p.TotalWorkouts)
	assert.Equal(t, 300, p.TotalCaloriesBurned)
	assert.InDelta(t, 10.0, p.ConsistencyScore, 0.001)
}

func TestAdmin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice, ac := h.member(t, "alice")
	bob, _ := h.member(t, "bob")
	root := h.admin(t)

	_, err := ac.AdminUsers(ctx)
	require.ErrorIs(t, err, client.ErrForbidden)

	h.srv.AddWorkout(alice.ID, models.WorkoutInput{WorkoutType: "Gym", Duration: 30, CaloriesBurned: 200}, clock)
	h.srv.AddWorkout(alice.ID, models.WorkoutInput{WorkoutType: "Gym", Duration: 15, CaloriesBurned: 100}, clock)

	users, err := root.AdminUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	an, err := root.AdminAnalytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Analytics{TotalUsers: 2, TotalWorkouts: 2, ActiveUsers: 1, AverageWorkoutsPerUser: 1}, *an)

	st, err := root.AdminUserStats(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStats{UserID: alice.ID, Username: "alice", TotalWorkouts: 2, TotalCaloriesBurned: 300, TotalWorkoutMinutes: 45}, *st)

	ws, err := root.AdminUserWorkouts(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, ws, 2)

	admins, err := root.CurrentUser(ctx)
	require.NoError(t, err)
	err = root.AdminDeleteUser(ctx, admins.ID)
	require.ErrorIs(t, err, client.ErrForbidden)
	assert.Equal(t, "Cannot delete admin users", client.Message(err, ""))

	require.NoError(t, root.AdminDeleteUser(ctx, alice.ID))
	require.ErrorIs(t, root.AdminDeleteUser(ctx, alice.ID), client.ErrNotFound)
	_, err = ac.CurrentUser(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized)

	users, err = root.AdminUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, bob.ID, users[0].ID)
}
