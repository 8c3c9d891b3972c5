package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/session"
	"github.com/dmitrijs2005/fittrack/internal/common"
)

// Register asks for email, username and password, creates the account and
// signs in with it.
func (a *App) Register(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.session.Register(ctx, models.RegisterInput{
		Email:    email,
		Username: username,
		Password: string(password),
	})
	if err != nil {
		return err
	}
	a.greet(u)
	return nil
}

// Login asks for credentials and signs in.
func (a *App) Login(ctx context.Context, args []string) error {
	var username string
	if len(args) > 0 {
		username = args[0]
	} else {
		var err error
		if username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
			return err
		}
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.session.Login(ctx, username, string(password))
	if err != nil {
		return err
	}
	a.greet(u)
	return nil
}

func (a *App) greet(u *models.User) {
	printlnFn(fmt.Sprintf("Signed in as %s.", u.Username))
	printHelp(a)
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Signed out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context, _ []string) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not signed in.")
		return nil
	}
	role := "member"
	if u.IsAdmin {
		role = "admin"
	}
	printlnFn(fmt.Sprintf("%s <%s> (%s, id %d)", u.Username, u.Email, role, u.ID))

	exp, err := a.session.Expiry(ctx)
	switch {
	case errors.Is(err, session.ErrNoExpiry):
		printlnFn("Session does not expire.")
	case err != nil:
		a.log.Debug(ctx, "token expiry unavailable", "error", err)
	default:
		printlnFn(fmt.Sprintf("Session expires %s (in %s).",
			exp.Local().Format(time.DateTime), time.Until(exp).Round(time.Minute)))
	}
	return nil
}
