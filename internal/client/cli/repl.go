package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fittrack/internal/client/client"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/client/services"
	"github.com/dmitrijs2005/fittrack/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var errBadInput = errors.New("invalid input")

// command is one REPL command. It is offered on the listed surfaces only.
type command struct {
	name     string
	usage    string
	help     string
	surfaces []session.Surface
	run      func(ctx context.Context, args []string) error
}

// execIface is what the REPL needs from the application. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	resolve(requested session.Surface) session.Surface
	commands() []command
}

// runREPL reads commands from reader until EOF, "exit" or "quit".
//
// "help" lists the commands of the current surface. A command from another
// surface is refused; the user stays on (or is sent to) the surface their
// role resolves to. Handler errors are reported and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	byName := make(map[string]command)
	for _, c := range a.commands() {
		byName[c.name] = c
	}

	for {
		printlnFn(fmt.Sprintf("fittrack %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printHelp(a)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		c, ok := byName[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if !offered(a, c) {
			refuse(a, name)
			continue
		}
		if err := c.run(ctx, args); err != nil {
			printlnFn("Error:", describe(err))
		}
	}
}

func offered(a execIface, c command) bool {
	for _, s := range c.surfaces {
		if a.resolve(s) == s {
			return true
		}
	}
	return false
}

func refuse(a execIface, name string) {
	landing := a.resolve(session.Home)
	if landing == session.Login {
		printlnFn(fmt.Sprintf("%q needs you to be logged in. Use login or register.", name))
		return
	}
	printlnFn(fmt.Sprintf("%q is not available here; back to the %s.", name, landing))
}

func printHelp(a execIface) {
	printlnFn(fmt.Sprintf("Available commands (%s):", a.resolve(session.Home)))
	for _, c := range a.commands() {
		if !offered(a, c) {
			continue
		}
		printlnFn(fmt.Sprintf("  %-28s %s", strings.TrimSpace(c.name+" "+c.usage), c.help))
	}
	printlnFn(fmt.Sprintf("  %-28s %s", "help", "show this list"))
	printlnFn(fmt.Sprintf("  %-28s %s", "exit", "leave the program"))
}

// describe turns an error into the one-line message shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, please try again later"
	case errors.Is(err, client.ErrSession):
		return "could not read the stored session"
	case errors.Is(err, client.ErrMalformedResponse):
		return "unexpected response from server"
	case errors.Is(err, errBadInput),
		errors.Is(err, models.ErrInvalid),
		errors.Is(err, services.ErrStrengthInput),
		errors.Is(err, services.ErrEmptyPrompt),
		errors.Is(err, services.ErrEmptyMessage):
		return err.Error()
	case errors.Is(err, client.ErrUnauthorized):
		return client.Message(err, "not authorized, please log in again")
	}
	return client.Message(err, err.Error())
}
