package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/client"
	"github.com/dmitrijs2005/fittrack/internal/client/config"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/session"
	"github.com/dmitrijs2005/fittrack/internal/testsupport/fakeapi"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startBackend(t *testing.T) (*fakeapi.Server, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := fakeapi.New()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts.URL
}

func noTerminal(t *testing.T) {
	t.Helper()
	old := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = old })
}

func runScript(t *testing.T, url string, store session.Store, lines ...string) []string {
	t.Helper()
	out := capturePrint(t)
	api := client.NewRESTClient(url, client.WithTokenSource(store))
	app := newApp(api, store, nil, strings.NewReader(strings.Join(lines, "\n")+"\n"), &bytes.Buffer{})
	app.Run(context.Background())
	require.NoError(t, app.Close())
	return *out
}

func TestApp_MemberSession(t *testing.T) {
	noTerminal(t)
	_, url := startBackend(t)
	store := session.NewMemoryStore()

	out := runScript(t, url, store,
		"log",
		"register",
		"alice@example.com",
		"alice",
		"secret",
		"log",
		"Running",
		"30",
		"high",
		"250",
		"",
		"strength 3 10 40",
		"overview",
		"volume",
		"today",
		"users",
		"exit",
	)

	assert.True(t, contains(out, "Please log in or register."))
	assert.True(t, contains(out, `"log" needs you to be logged in`))
	assert.True(t, contains(out, "Signed in as alice."))
	assert.True(t, contains(out, "Workout logged. You have 1 workouts."))
	assert.True(t, contains(out, "Logged 3x10@40kg: about 120 kcal in 6 min."))
	assert.True(t, contains(out, "Workouts: 2, calories burned: 370, minutes: 36"))
	assert.True(t, contains(out, "No profile yet."))
	assert.True(t, contains(out, "400.0 kg"))
	assert.Equal(t, 2, count(out, "Workouts today: 2"), "overview and today both report it")
	assert.True(t, contains(out, `"users" is not available here; back to the dashboard`))

	tok, err := store.Token(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, tok)

	// A second run restores the stored session without logging in.
	out = runScript(t, url, store, "logout", "today", "exit")
	assert.True(t, contains(out, "Restoring session for alice..."))
	assert.True(t, contains(out, "Welcome back, alice!"))
	assert.True(t, contains(out, "Signed out."))
	assert.True(t, contains(out, `"today" needs you to be logged in`))

	tok, err = store.Token(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestApp_StrengthRejectsOutOfRange(t *testing.T) {
	noTerminal(t)
	srv, url := startBackend(t)
	_, err := srv.CreateUser(models.RegisterInput{Email: "a@example.com", Username: "alice", Password: "pw"})
	require.NoError(t, err)

	out := runScript(t, url, session.NewMemoryStore(),
		"login alice",
		"pw",
		"strength 1099511627776 1073741824 40",
		"strength 99999999999999999999 10 40",
		"strength",
		"3",
		"10",
		"5000",
		"today",
		"exit",
	)
	assert.True(t, contains(out, "usage strength <sets> <reps> <weight>"))
	assert.True(t, contains(out, "Error: sets (1-100), reps (1-1000) and weight (up to 1000 kg) must be positive"))
	assert.True(t, contains(out, "Workouts today: 0"))
	assert.False(t, contains(out, "Logged "))
}

func TestApp_AdminNotifiesMember(t *testing.T) {
	noTerminal(t)
	srv, url := startBackend(t)
	alice, err := srv.CreateUser(models.RegisterInput{Email: "a@example.com", Username: "alice", Password: "pw"})
	require.NoError(t, err)
	_, err = srv.CreateUser(models.RegisterInput{Email: "r@example.com", Username: "root", Password: "pw", IsAdmin: true})
	require.NoError(t, err)

	out := runScript(t, url, session.NewMemoryStore(),
		"login root",
		"pw",
		"users",
		"notify 1 drink more water",
		"overview",
		"deluser 2",
		"n",
		"exit",
	)
	assert.True(t, contains(out, "Signed in as root."))
	assert.True(t, contains(out, "1 users"))
	assert.True(t, contains(out, "Notification sent to user #1."))
	assert.True(t, contains(out, `"overview" is not available here; back to the admin`))
	assert.True(t, contains(out, "Cancelled."))
	require.Equal(t, int64(1), alice.ID)

	out = runScript(t, url, session.NewMemoryStore(),
		"login alice",
		"pw",
		"notifications",
		"read 3",
		"exit",
	)
	assert.True(t, contains(out, "1 unread"))
	assert.True(t, contains(out, "drink more water"))
	assert.True(t, contains(out, "Marked #3 read, 0 unread."))
}

func TestApp_BadLoginKeepsAnonymous(t *testing.T) {
	noTerminal(t)
	_, url := startBackend(t)

	out := runScript(t, url, session.NewMemoryStore(), "login ghost", "nope", "today", "exit")
	assert.True(t, contains(out, "Error: Incorrect username or password"))
	assert.True(t, contains(out, `"today" needs you to be logged in`))
}

func TestNewApp_CreatesSessionDatabase(t *testing.T) {
	_, url := startBackend(t)
	cfg := &config.Config{
		APIURL:         url,
		DBPath:         filepath.Join(t.TempDir(), "state", "fittrack.db"),
		RequestTimeout: 5 * time.Second,
		LogLevel:       "info",
	}

	app, err := NewApp(context.Background(), cfg, nil, prometheus.NewRegistry())
	require.NoError(t, err)
	require.NoError(t, app.Close())

	_, err = os.Stat(cfg.DBPath)
	require.NoError(t, err)
}
