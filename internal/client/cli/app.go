package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/fittrack/internal/client/client"
	"github.com/dmitrijs2005/fittrack/internal/client/config"
	"github.com/dmitrijs2005/fittrack/internal/client/observability"
	"github.com/dmitrijs2005/fittrack/internal/client/services"
	"github.com/dmitrijs2005/fittrack/internal/client/session"
	"github.com/dmitrijs2005/fittrack/internal/filex"
	"github.com/dmitrijs2005/fittrack/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	session   *session.Manager
	workouts  services.WorkoutService
	profile   services.ProfileService
	inbox     *services.Inbox
	assistant *services.Assistant
	admin     *services.AdminConsole
	overview  services.OverviewAPI

	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
	close  func() error
}

// NewApp opens the session database at cfg.DBPath, creating its directory
// if needed, and builds an App that talks to cfg.APIURL. API metrics are
// registered with reg when non-nil.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, reg prometheus.Registerer) (*App, error) {
	if log == nil {
		log = logging.Discard()
	}
	path, err := filex.EnsureParentDir(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error preparing database path: %w", err)
	}
	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := session.NewMetadataStore(db)
	api := client.NewRESTClient(cfg.APIURL,
		client.WithTokenSource(store),
		client.WithLogger(log),
		client.WithTimeout(cfg.RequestTimeout),
		client.WithMetrics(observability.NewAPIMetrics(reg)),
	)

	app := newApp(api, store, log, os.Stdin, os.Stdout)
	app.close = db.Close
	return app, nil
}

func newApp(api client.Client, store session.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Discard()
	}
	return &App{
		session:   session.NewManager(api, store, log),
		workouts:  services.NewWorkoutService(api, log),
		profile:   services.NewProfileService(api),
		inbox:     services.NewInbox(api),
		assistant: services.NewAssistant(api),
		admin:     services.NewAdminConsole(api),
		overview:  api,
		log:       log,
		reader:    bufio.NewReader(in),
		out:       out,
		close:     func() error { return nil },
	}
}

// Run restores the stored session and runs the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to FitTrack (type 'help' for commands)")

	if name, err := a.session.CachedUsername(ctx); err != nil {
		a.log.Debug(ctx, "cached username unavailable", "error", err)
	} else if name != "" {
		printlnFn(fmt.Sprintf("Restoring session for %s...", name))
	}
	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if u := a.session.User(); u != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", u.Username))
	} else {
		printlnFn("Please log in or register.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the session database.
func (a *App) Close() error {
	return a.close()
}

func (a *App) resolve(requested session.Surface) session.Surface {
	return a.session.Resolve(requested)
}

func (a *App) getStatus() string {
	u := a.session.User()
	if u == nil {
		return ""
	}
	if u.IsAdmin {
		return fmt.Sprintf("(%s admin)", u.Username)
	}
	return fmt.Sprintf("(%s)", u.Username)
}
