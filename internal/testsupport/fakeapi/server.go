package fakeapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/common"
	"github.com/gin-gonic/gin"
)

// Generator produces the AI coach's answer for a prompt.
type Generator func(prompt string) (string, error)

// Server is the fake backend.
type Server struct {
	store    *store
	engine   *gin.Engine
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
	generate Generator
}

type Option func(*Server)

// WithClock replaces time.Now, for streaks, dates and token expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

func WithSecret(secret []byte) Option {
	return func(s *Server) { s.secret = secret }
}

func WithTokenTTL(ttl time.Duration) Option {
	return func(s *Server) { s.ttl = ttl }
}

func WithGenerator(g Generator) Option {
	return func(s *Server) { s.generate = g }
}

// New builds a Server with an empty store. Without WithSecret a random
// signing key is used.
func New(opts ...Option) *Server {
	s := &Server{
		ttl:      DefaultTokenTTL,
		now:      time.Now,
		generate: echoCoach,
	}
	for _, o := range opts {
		o(s)
	}
	if s.secret == nil {
		s.secret = common.GenerateRandByteArray(32)
	}
	s.store = newStore(s.now)
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// CreateUser adds an account directly, bypassing /auth/register.
func (s *Server) CreateUser(in models.RegisterInput) (models.User, error) {
	if err := in.Validate(); err != nil {
		return models.User{}, err
	}
	return s.store.register(in)
}

// AddWorkout stores a workout for userID dated at.
func (s *Server) AddWorkout(userID int64, in models.WorkoutInput, at time.Time) models.Workout {
	return s.store.addWorkout(userID, in, at)
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "FitTrack API", "version": "1.0.0"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	auth := r.Group("/auth")
	auth.POST("/register", s.register)
	auth.POST("/login", s.login)
	auth.GET("/me", s.requireUser, s.me)

	member := r.Group("/", s.requireUser)
	member.POST("/workouts", s.createWorkout)
	member.GET("/workouts", s.listWorkouts)
	member.GET("/workouts/today", s.todayWorkouts)
	member.PUT("/workouts/:id", s.updateWorkout)
	member.DELETE("/workouts/:id", s.deleteWorkout)
	member.GET("/streaks", s.streaks)
	member.GET("/rewards", s.rewards)

	member.POST("/users/metrics", s.saveMetrics)
	member.GET("/users/metrics", s.getMetrics)
	member.GET("/users/notifications", s.notifications)
	member.PUT("/users/notifications/:id/read", s.markRead)

	member.POST("/ai/recommendations", s.recommendations)
	member.GET("/ai/progress-analysis", s.progress)

	admin := r.Group("/admin", s.requireUser, s.requireAdmin)
	admin.GET("/users", s.adminUsers)
	admin.DELETE("/users/:id", s.adminDeleteUser)
	admin.POST("/notifications", s.adminNotify)
	admin.GET("/analytics", s.adminAnalytics)
	admin.GET("/users/:id/stats", s.adminUserStats)
	admin.GET("/users/:id/workouts", s.adminUserWorkouts)

	return r
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithValidation(c, "path", "id", "Input should be a valid integer")
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		abortWithValidation(c, "query", name, "Input should be a valid integer")
		return 0, false
	}
	return n, true
}

func bindWorkout(c *gin.Context) (models.WorkoutInput, bool) {
	var in models.WorkoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithValidation(c, "body", "", err.Error())
		return in, false
	}
	if err := in.Validate(); err != nil {
		abortWithValidation(c, "body", "workout_type", err.Error())
		return in, false
	}
	return in, true
}

func (s *Server) createWorkout(c *gin.Context) {
	in, ok := bindWorkout(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.addWorkout(currentUser(c).ID, in, s.now()))
}

func (s *Server) listWorkouts(c *gin.Context) {
	skip, ok := queryInt(c, "skip", 0)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 100)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.listWorkouts(currentUser(c).ID, max(skip, 0), max(limit, 0)))
}

func (s *Server) todayWorkouts(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.today(currentUser(c).ID))
}

func (s *Server) updateWorkout(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	in, ok := bindWorkout(c)
	if !ok {
		return
	}
	w, err := s.store.updateWorkout(currentUser(c).ID, id, in)
	if err != nil {
		abortWithStoreError(c, err, "Workout not found")
		return
	}
	c.JSON(http.StatusOK, w)
}

func (s *Server) deleteWorkout(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.store.deleteWorkout(currentUser(c).ID, id); err != nil {
		abortWithStoreError(c, err, "Workout not found")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Workout deleted successfully"})
}

func (s *Server) streaks(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.streak(currentUser(c).ID))
}

func (s *Server) rewards(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.userRewards(currentUser(c).ID))
}

func (s *Server) saveMetrics(c *gin.Context) {
	var in models.MetricsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithValidation(c, "body", "", err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		abortWithValidation(c, "body", "", err.Error())
		return
	}
	c.JSON(http.StatusOK, s.store.saveMetrics(currentUser(c).ID, in))
}

func (s *Server) getMetrics(c *gin.Context) {
	m, err := s.store.getMetrics(currentUser(c).ID)
	if err != nil {
		abortWithStoreError(c, err, "Metrics not found. Please set up your profile first.")
		return
	}
	c.JSON(http.StatusOK, m)
}

func (s *Server) notifications(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.userNotifications(currentUser(c).ID))
}

func (s *Server) markRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.store.markRead(currentUser(c).ID, id); err != nil {
		abortWithStoreError(c, err, "Notification not found")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Notification marked as read"})
}

// defaultPrompt selects the profile-based recommendation mode.
const defaultPrompt = "Generate personalized workout and diet recommendations"

func (s *Server) recommendations(c *gin.Context) {
	var req models.AIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithValidation(c, "body", "prompt", err.Error())
		return
	}
	u := currentUser(c)

	prompt, mode := strings.TrimSpace(req.Prompt), models.AIModeAskAnything
	if prompt == "" || prompt == defaultPrompt {
		prompt, mode = s.coachPrompt(u.ID), models.AIModeAutoRecommendation
	}
	answer, err := s.generate(prompt)
	if err != nil {
		abortWithDetail(c, http.StatusInternalServerError, "AI generation failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, models.AIRecommendation{AIResponse: answer, Mode: mode})
}

// coachPrompt describes the user's profile and five latest workouts.
func (s *Server) coachPrompt(userID int64) string {
	var b strings.Builder
	b.WriteString("You are a professional fitness coach and nutritionist.\n\nUSER PROFILE:\n")
	if m, err := s.store.getMetrics(userID); err == nil {
		fmt.Fprintf(&b, "Age: %d\nGender: %s\nHeight: %v cm\nWeight: %v kg\nBMI: %v\nActivity Level: %s\n",
			m.Age, m.Gender, m.Height, m.Weight, m.BMI, m.ActivityLevel)
	} else {
		b.WriteString("Age: N/A\nGender: N/A\nHeight: N/A cm\nWeight: N/A kg\nBMI: N/A\nActivity Level: moderate\n")
	}
	b.WriteString("\nRECENT WORKOUTS:\n")
	for _, w := range s.store.listWorkouts(userID, 0, 5) {
		fmt.Fprintf(&b, "%s - %d min - %s\n", w.WorkoutType, w.Duration, w.Intensity)
	}
	b.WriteString("\nTASK:\n1. Create a personalized 5-day workout plan\n2. Give a practical diet plan\n3. Write a short motivational message\n")
	return b.String()
}

func echoCoach(prompt string) (string, error) {
	return "Coach says: " + strings.SplitN(prompt, "\n", 2)[0], nil
}

func (s *Server) progress(c *gin.Context) {
	days, ok := queryInt(c, "days", 30)
	if !ok {
		return
	}
	if days <= 0 {
		abortWithValidation(c, "query", "days", "Input should be greater than 0")
		return
	}

	ws := s.store.workoutsSince(currentUser(c).ID, s.now().Add(-time.Duration(days)*24*time.Hour))
	if len(ws) == 0 {
		c.JSON(http.StatusOK, models.ProgressAnalysis{Message: "No workout data available", DaysAnalyzed: days})
		return
	}
	p := models.ProgressAnalysis{Period: fmt.Sprintf("%d days", days), TotalWorkouts: len(ws)}
	for _, w := range ws {
		p.TotalMinutes += w.Duration
		p.TotalCaloriesBurned += w.CaloriesBurned
	}
	p.ConsistencyScore = min(100, float64(len(ws))/float64(days)*100)
	c.JSON(http.StatusOK, p)
}

func (s *Server) adminUsers(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.members())
}

func (s *Server) adminDeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.store.deleteUser(id); err != nil {
		abortWithStoreError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "User deleted successfully"})
}

func (s *Server) adminNotify(c *gin.Context) {
	var in models.NotificationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithValidation(c, "body", "", err.Error())
		return
	}
	if strings.TrimSpace(in.Message) == "" {
		abortWithValidation(c, "body", "message", "Field required")
		return
	}
	if err := s.store.notify(in.UserID, in.Message); err != nil {
		abortWithStoreError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Notification sent successfully"})
}

func (s *Server) adminAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.analytics())
}

func (s *Server) adminUserStats(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	st, err := s.store.userStats(id)
	if err != nil {
		abortWithStoreError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) adminUserWorkouts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.workoutsOf(id))
}
