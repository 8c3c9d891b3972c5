package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures the last request seen by the test server.
type recorder struct {
	mu     sync.Mutex
	method string
	path   string
	query  map[string]string
	header http.Header
	body   string
}

func (r *recorder) capture(req *http.Request) {
	b, _ := io.ReadAll(req.Body)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.method = req.Method
	r.path = req.URL.Path
	r.header = req.Header.Clone()
	r.body = string(b)
	r.query = map[string]string{}
	for k := range req.URL.Query() {
		r.query[k] = req.URL.Query().Get(k)
	}
}

func newServer(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec.capture(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func staticToken(tok string) TokenSource {
	return TokenSourceFunc(func(context.Context) (string, error) { return tok, nil })
}

const userJSON = `{"id":1,"email":"a@example.com","username":"alice","is_admin":false,"created_at":"2024-01-02T10:00:00"}`

func TestRESTClient_BearerOnlyWhenTokenStored(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, userJSON)
	ctx := context.Background()

	anon := NewRESTClient(srv.URL)
	_, err := anon.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Empty(t, rec.header.Get("Authorization"))
	assert.NotEmpty(t, rec.header.Get(RequestIDHeader))

	authed := NewRESTClient(srv.URL, WithTokenSource(staticToken("tok-1")))
	u, err := authed.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", rec.header.Get("Authorization"))
	assert.Equal(t, "alice", u.Username)
}

func TestRESTClient_TokenReadOnEveryRequest(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `[]`)
	tok := "first"
	c := NewRESTClient(srv.URL, WithTokenSource(TokenSourceFunc(func(context.Context) (string, error) {
		return tok, nil
	})))

	_, err := c.Rewards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer first", rec.header.Get("Authorization"))

	tok = ""
	_, err = c.Rewards(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.header.Get("Authorization"))
}

func TestRESTClient_TokenSourceFailureStopsRequest(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, userJSON)
	boom := errors.New("disk gone")
	c := NewRESTClient(srv.URL, WithTokenSource(TokenSourceFunc(func(context.Context) (string, error) {
		return "", boom
	})))

	_, err := c.CurrentUser(context.Background())
	require.ErrorIs(t, err, ErrSession)
	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, rec.method, "request must not reach the server")
}

func TestRESTClient_LoginIsFormEncoded(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"access_token":"abc","token_type":"bearer"}`)
	c := NewRESTClient(srv.URL)

	tok, err := c.Login(context.Background(), "alice", "s3cret&x")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/auth/login", rec.path)
	assert.True(t, strings.HasPrefix(rec.header.Get("Content-Type"), "application/x-www-form-urlencoded"))
	assert.Contains(t, rec.body, "username=alice")
	assert.Contains(t, rec.body, "password=s3cret%26x")
}

func TestRESTClient_LoginRejectsEmptyToken(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"access_token":"","token_type":"bearer"}`)
	_, err := NewRESTClient(srv.URL).Login(context.Background(), "a", "b")
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestRESTClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
		detail string
	}{
		{"unauthorized", 401, `{"detail":"Could not validate credentials"}`, ErrUnauthorized, "Could not validate credentials"},
		{"forbidden", 403, `{"detail":"Admin access required"}`, ErrForbidden, "Admin access required"},
		{"not found", 404, `{"detail":"Workout not found"}`, ErrNotFound, "Workout not found"},
		{"bad request", 400, `{"detail":"Username already registered"}`, ErrValidation, "Username already registered"},
		{"unprocessable", 422, `{"detail":[{"loc":["body","duration"],"msg":"field required"}]}`, ErrValidation, "duration: field required"},
		{"server", 500, `Internal Server Error`, ErrServer, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			_, err := NewRESTClient(srv.URL).CurrentUser(context.Background())
			require.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.detail, apiErr.Detail)
			assert.Equal(t, tt.detail, Message(err, ""))
		})
	}
}

func TestMessage_FallsBackForNonAPIErrors(t *testing.T) {
	assert.Equal(t, "Failed to save workout", Message(ErrUnavailable, "Failed to save workout"))
	assert.Equal(t, "fallback", Message(&APIError{StatusCode: 500}, "fallback"))
}

func TestRESTClient_Unreachable(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, userJSON)
	url := srv.URL
	srv.Close()

	_, err := NewRESTClient(url).CurrentUser(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestRESTClient_MalformedBodies(t *testing.T) {
	ctx := context.Background()

	srv, _ := newServer(t, http.StatusOK, `{"id":`)
	_, err := NewRESTClient(srv.URL).CurrentUser(ctx)
	require.ErrorIs(t, err, ErrMalformedResponse)

	srv, _ = newServer(t, http.StatusOK, `{"id":0,"username":"ghost"}`)
	_, err = NewRESTClient(srv.URL).CurrentUser(ctx)
	require.ErrorIs(t, err, ErrMalformedResponse)
	require.ErrorIs(t, err, models.ErrInvalid)

	srv, _ = newServer(t, http.StatusOK, `[{"id":1,"workout_type":""}]`)
	_, err = NewRESTClient(srv.URL).ListWorkouts(ctx, 0, 10)
	require.ErrorIs(t, err, ErrMalformedResponse)
}

func TestRESTClient_ListDefaultsAndNullList(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `null`)
	c := NewRESTClient(srv.URL)

	got, err := c.ListWorkouts(context.Background(), -5, 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, map[string]string{"skip": "0", "limit": "100"}, rec.query)
}

func TestRESTClient_ProgressDefaultDays(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"message":"No workout data available","days_analyzed":30}`)
	p, err := NewRESTClient(srv.URL).ProgressAnalysis(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, p.HasData())
	assert.Equal(t, "30", rec.query["days"])
}

func TestRESTClient_WorkoutWriteRequests(t *testing.T) {
	const workoutJSON = `{"id":9,"workout_type":"Gym","duration":6,"intensity":"moderate","calories_burned":120,"notes":"3x10@40kg","date":"2024-01-02T08:00:00"}`
	srv, rec := newServer(t, http.StatusOK, workoutJSON)
	c := NewRESTClient(srv.URL)
	ctx := context.Background()
	notes := "3x10@40kg"
	in := models.WorkoutInput{WorkoutType: "Gym", Duration: 6, Intensity: "moderate", CaloriesBurned: 120, Notes: &notes}

	w, err := c.UpdateWorkout(ctx, 9, in)
	require.NoError(t, err)
	assert.Equal(t, int64(9), w.ID)
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/workouts/9", rec.path)

	var sent models.WorkoutInput
	require.NoError(t, json.Unmarshal([]byte(rec.body), &sent))
	assert.Equal(t, in.WorkoutType, sent.WorkoutType)
	assert.Equal(t, notes, *sent.Notes)

	require.NoError(t, c.DeleteWorkout(ctx, 9))
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/workouts/9", rec.path)

	_, err = c.CreateWorkout(ctx, models.WorkoutInput{WorkoutType: "  "})
	require.ErrorIs(t, err, models.ErrInvalid)
}

func TestRESTClient_AdminRequests(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"message":"ok"}`)
	c := NewRESTClient(srv.URL)
	ctx := context.Background()

	require.NoError(t, c.AdminSendNotification(ctx, 4, "Great job"))
	assert.Equal(t, "/admin/notifications", rec.path)
	assert.JSONEq(t, `{"user_id":4,"message":"Great job"}`, rec.body)

	require.NoError(t, c.AdminDeleteUser(ctx, 4))
	assert.Equal(t, "/admin/users/4", rec.path)

	require.NoError(t, c.MarkNotificationRead(ctx, 7))
	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/users/notifications/7/read", rec.path)
}

func TestRESTClient_RecordsMetricsByRouteTemplate(t *testing.T) {
	srv, _ := newServer(t, http.StatusNotFound, `{"detail":"Workout not found"}`)
	m := observability.NewAPIMetrics(nil)
	c := NewRESTClient(srv.URL, WithMetrics(m))

	err := c.DeleteWorkout(context.Background(), 3)
	require.ErrorIs(t, err, ErrNotFound)
	err = c.DeleteWorkout(context.Background(), 4)
	require.ErrorIs(t, err, ErrNotFound)

	got := testutil.ToFloat64(m.Requests().WithLabelValues(http.MethodDelete, "/workouts/{id}", "4xx"))
	assert.Equal(t, float64(2), got)
}
