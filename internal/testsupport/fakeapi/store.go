package fakeapi

import (
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/common"
	"golang.org/x/crypto/bcrypt"
)

type account struct {
	models.User
	hash []byte
}

type ownedWorkout struct {
	models.Workout
	userID int64
}

type ownedNotification struct {
	models.Notification
	userID int64
}

type ownedReward struct {
	models.Reward
	userID int64
}

// store is the in-memory state of the backend. All methods are safe for
// concurrent use.
type store struct {
	mu  sync.Mutex
	now func() time.Time

	lastID        int64
	accounts      []*account
	workouts      []*ownedWorkout
	metrics       map[int64]models.UserMetrics
	notifications []*ownedNotification
	rewards       []*ownedReward
}

func newStore(now func() time.Time) *store {
	return &store{now: now, metrics: make(map[int64]models.UserMetrics)}
}

func (s *store) nextID() int64 {
	s.lastID++
	return s.lastID
}

func (s *store) register(in models.RegisterInput) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.MinCost)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if strings.EqualFold(a.Email, in.Email) {
			return models.User{}, errEmailTaken
		}
		if a.Username == in.Username {
			return models.User{}, errUsernameTaken
		}
	}
	a := &account{
		User: models.User{
			ID:        s.nextID(),
			Email:     in.Email,
			Username:  in.Username,
			IsAdmin:   in.IsAdmin,
			CreatedAt: models.NewTime(s.now()),
		},
		hash: hash,
	}
	s.accounts = append(s.accounts, a)
	return a.User, nil
}

func (s *store) authenticate(username, password string) (models.User, error) {
	s.mu.Lock()
	a := s.findByName(username)
	s.mu.Unlock()
	if a == nil {
		return models.User{}, common.ErrorUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(a.hash, []byte(password)); err != nil {
		return models.User{}, common.ErrorUnauthorized
	}
	return a.User, nil
}

func (s *store) findByName(username string) *account {
	for _, a := range s.accounts {
		if a.Username == username {
			return a
		}
	}
	return nil
}

func (s *store) findByID(id int64) *account {
	for _, a := range s.accounts {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (s *store) userByName(username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findByName(username)
	if a == nil {
		return models.User{}, common.ErrorNotFound
	}
	return a.User, nil
}

// members returns the non-admin accounts.
func (s *store) members() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.User{}
	for _, a := range s.accounts {
		if !a.IsAdmin {
			out = append(out, a.User)
		}
	}
	return out
}

// deleteUser removes a member and everything they own. Admins cannot be
// deleted.
func (s *store) deleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.findByID(id)
	if a == nil {
		return common.ErrorNotFound
	}
	if a.IsAdmin {
		return common.ErrorForbidden
	}
	s.accounts = slices.DeleteFunc(s.accounts, func(x *account) bool { return x.ID == id })
	s.workouts = slices.DeleteFunc(s.workouts, func(w *ownedWorkout) bool { return w.userID == id })
	s.notifications = slices.DeleteFunc(s.notifications, func(n *ownedNotification) bool { return n.userID == id })
	s.rewards = slices.DeleteFunc(s.rewards, func(r *ownedReward) bool { return r.userID == id })
	delete(s.metrics, id)
	return nil
}

// addWorkout stores a workout dated at. Every seventh workout earns a
// weekly milestone reward.
func (s *store) addWorkout(userID int64, in models.WorkoutInput, at time.Time) models.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := &ownedWorkout{userID: userID, Workout: models.Workout{
		ID:             s.nextID(),
		WorkoutType:    in.WorkoutType,
		Duration:       in.Duration,
		Intensity:      in.Intensity,
		CaloriesBurned: in.CaloriesBurned,
		Notes:          in.Notes,
		Date:           models.NewTime(at),
	}}
	s.workouts = append(s.workouts, w)

	if n := len(s.userWorkouts(userID)); n%7 == 0 {
		s.rewards = append(s.rewards, &ownedReward{userID: userID, Reward: models.Reward{
			ID:          s.nextID(),
			Title:       weekTitle(n / 7),
			Description: milestoneText(n),
			EarnedAt:    models.NewTime(at),
		}})
	}
	return w.Workout
}

func (s *store) updateWorkout(userID, id int64, in models.WorkoutInput) (models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.workouts {
		if w.ID == id && w.userID == userID {
			w.WorkoutType = in.WorkoutType
			w.Duration = in.Duration
			w.Intensity = in.Intensity
			w.CaloriesBurned = in.CaloriesBurned
			w.Notes = in.Notes
			return w.Workout, nil
		}
	}
	return models.Workout{}, common.ErrorNotFound
}

func (s *store) deleteWorkout(userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.workouts)
	s.workouts = slices.DeleteFunc(s.workouts, func(w *ownedWorkout) bool { return w.ID == id && w.userID == userID })
	if len(s.workouts) == n {
		return common.ErrorNotFound
	}
	return nil
}

// userWorkouts returns the user's workouts newest first. Callers hold mu.
func (s *store) userWorkouts(userID int64) []models.Workout {
	out := []models.Workout{}
	for _, w := range s.workouts {
		if w.userID == userID {
			out = append(out, w.Workout)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Workout) int { return b.Date.Compare(a.Date.Time) })
	return out
}

func (s *store) listWorkouts(userID int64, skip, limit int) []models.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws := s.userWorkouts(userID)
	if skip >= len(ws) {
		return []models.Workout{}
	}
	ws = ws[skip:]
	if limit < len(ws) {
		ws = ws[:limit]
	}
	return ws
}

func (s *store) workoutsSince(userID int64, since time.Time) []models.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Workout{}
	for _, w := range s.userWorkouts(userID) {
		if !w.Date.Before(since) {
			out = append(out, w)
		}
	}
	return out
}

func (s *store) today(userID int64) []models.Workout {
	start := day(s.now())
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Workout{}
	for _, w := range s.userWorkouts(userID) {
		if day(w.Date.Time).Equal(start) {
			out = append(out, w)
		}
	}
	return out
}

func (s *store) streak(userID int64) models.StreakData {
	s.mu.Lock()
	ws := s.userWorkouts(userID)
	s.mu.Unlock()
	dates := make([]time.Time, 0, len(ws))
	for _, w := range ws {
		dates = append(dates, w.Date.Time)
	}
	return computeStreak(dates, s.now())
}

func (s *store) userRewards(userID int64) []models.Reward {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Reward{}
	for _, r := range s.rewards {
		if r.userID == userID {
			out = append(out, r.Reward)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Reward) int { return b.EarnedAt.Compare(a.EarnedAt.Time) })
	return out
}

func (s *store) getMetrics(userID int64) (models.UserMetrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.metrics[userID]
	if !ok {
		return models.UserMetrics{}, common.ErrorNotFound
	}
	return m, nil
}

func (s *store) saveMetrics(userID int64, in models.MetricsInput) models.UserMetrics {
	m := deriveMetrics(in)
	s.mu.Lock()
	s.metrics[userID] = m
	s.mu.Unlock()
	return m
}

func (s *store) notify(userID int64, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findByID(userID) == nil {
		return common.ErrorNotFound
	}
	s.notifications = append(s.notifications, &ownedNotification{userID: userID, Notification: models.Notification{
		ID:        s.nextID(),
		Message:   message,
		CreatedAt: models.NewTime(s.now()),
	}})
	return nil
}

func (s *store) userNotifications(userID int64) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Notification{}
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if n := s.notifications[i]; n.userID == userID {
			out = append(out, n.Notification)
		}
	}
	return out
}

func (s *store) markRead(userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.ID == id && n.userID == userID {
			n.IsRead = true
			return nil
		}
	}
	return common.ErrorNotFound
}

func (s *store) analytics() models.Analytics {
	s.mu.Lock()
	defer s.mu.Unlock()
	var a models.Analytics
	active := make(map[int64]bool)
	for _, acc := range s.accounts {
		if !acc.IsAdmin {
			a.TotalUsers++
		}
	}
	for _, w := range s.workouts {
		a.TotalWorkouts++
		if acc := s.findByID(w.userID); acc != nil && !acc.IsAdmin {
			active[w.userID] = true
		}
	}
	a.ActiveUsers = len(active)
	a.AverageWorkoutsPerUser = round2(float64(a.TotalWorkouts) / float64(max(a.TotalUsers, 1)))
	return a
}

func (s *store) userStats(id int64) (models.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc := s.findByID(id)
	if acc == nil {
		return models.UserStats{}, common.ErrorNotFound
	}
	st := models.UserStats{UserID: id, Username: acc.Username}
	for _, w := range s.workouts {
		if w.userID == id {
			st.TotalWorkouts++
			st.TotalCaloriesBurned += w.CaloriesBurned
			st.TotalWorkoutMinutes += w.Duration
		}
	}
	return st, nil
}

func (s *store) workoutsOf(id int64) []models.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userWorkouts(id)
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// computeStreak counts distinct workout days. The current streak runs back
// from today without a gap; a run that ended yesterday counts as zero.
func computeStreak(dates []time.Time, now time.Time) models.StreakData {
	if len(dates) == 0 {
		return models.StreakData{}
	}
	seen := make(map[time.Time]bool)
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		k := day(d)
		if !seen[k] {
			seen[k] = true
			days = append(days, k)
		}
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	var st models.StreakData
	for check := day(now); seen[check]; check = check.AddDate(0, 0, -1) {
		st.CurrentStreak++
	}

	run := 1
	st.LongestStreak = 1
	for i := 1; i < len(days); i++ {
		if days[i].Sub(days[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		st.LongestStreak = max(st.LongestStreak, run)
	}
	return st
}

// deriveMetrics computes BMI, body fat and skeletal muscle mass the way the
// service does.
func deriveMetrics(in models.MetricsInput) models.UserMetrics {
	hm := in.Height / 100
	bmi := round2(in.Weight / (hm * hm))
	age := float64(in.Age)
	male := strings.EqualFold(in.Gender, "male")

	fat := 1.20*bmi + 0.23*age - 5.4
	muscle := 0.252*in.Weight + 0.473*in.Height - 0.048*age + 0.4
	if male {
		fat = 1.20*bmi + 0.23*age - 16.2
		muscle = 0.407*in.Weight + 0.267*in.Height - 0.048*age - 19.2
	}
	return models.UserMetrics{
		Height:             in.Height,
		Weight:             in.Weight,
		Age:                in.Age,
		Gender:             in.Gender,
		ActivityLevel:      in.ActivityLevel,
		BMI:                bmi,
		BodyFatPercentage:  round2(fat),
		SkeletalMuscleMass: round2(muscle),
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
