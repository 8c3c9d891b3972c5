// Package cli provides the interactive FitTrack terminal client.
//
// It wires configuration, the local session database, the API client and
// the services into a REPL. On start the stored session is restored; with
// no stored token the user lands on the login surface without any request
// being sent.
//
// Commands are grouped by surface (anonymous, member dashboard, admin).
// A command from another surface is refused and the user is sent back to
// the surface their role lands on. Each command reports its own failure
// with a short message and the loop carries on; nothing is retried.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
