// Command fakeapi serves the in-memory FitTrack backend for local
// development of the client.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/flagx"
	"github.com/dmitrijs2005/fittrack/internal/logging"
	"github.com/dmitrijs2005/fittrack/internal/testsupport/fakeapi"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

type options struct {
	addr          string
	secret        string
	ttl           time.Duration
	adminUser     string
	adminPassword string
	logLevel      string
}

func parseOptions(args []string) (options, error) {
	o := options{addr: ":8080", ttl: fakeapi.DefaultTokenTTL, adminUser: "admin", adminPassword: "admin", logLevel: "info"}
	err := flagx.ParseSubset("fakeapi", args, []string{"a", "s", "t", "admin", "admin-password", "l"}, func(fs *flag.FlagSet) {
		fs.StringVar(&o.addr, "a", o.addr, "listen address")
		fs.StringVar(&o.secret, "s", "", "JWT signing secret (random when empty)")
		fs.DurationVar(&o.ttl, "t", o.ttl, "access token lifetime")
		fs.StringVar(&o.adminUser, "admin", o.adminUser, "seeded admin username (empty to skip)")
		fs.StringVar(&o.adminPassword, "admin-password", o.adminPassword, "seeded admin password")
		fs.StringVar(&o.logLevel, "l", o.logLevel, "log level")
	})
	return o, err
}

func main() {
	o, err := parseOptions(os.Args[1:])
	if err != nil {
		log.Fatalf("flags: %v", err)
	}
	logger, err := logging.NewTextLogger(os.Stderr, o.logLevel)
	if err != nil {
		log.Fatalf("flags: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	opts := []fakeapi.Option{fakeapi.WithTokenTTL(o.ttl)}
	if o.secret != "" {
		opts = append(opts, fakeapi.WithSecret([]byte(o.secret)))
	}
	api := fakeapi.New(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if o.adminUser != "" {
		if _, err := api.CreateUser(models.RegisterInput{
			Email:    o.adminUser + "@fittrack.local",
			Username: o.adminUser,
			Password: o.adminPassword,
			IsAdmin:  true,
		}); err != nil {
			log.Fatalf("seeding admin: %v", err)
		}
		logger.Info(ctx, "seeded admin account", "username", o.adminUser)
	}

	srv := &http.Server{Addr: o.addr, Handler: api.Handler(), ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(gctx, "fake API listening", "addr", o.addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "fake API stopped", "error", err)
		os.Exit(1)
	}
	logger.Info(ctx, "fake API stopped")
}
