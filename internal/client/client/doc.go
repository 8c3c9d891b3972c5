// Package client contains the FitTrack API access layer.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see Client and the per-group
//     interfaces AuthAPI, MetricsAPI, WorkoutsAPI, AIAPI, NotificationsAPI,
//     AdminAPI).
//  2. A concrete REST implementation (see RESTClient) built on resty. Every
//     outgoing request reads the session token from a TokenSource and, when
//     one is present, carries it as "Authorization: Bearer <token>".
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations)
//     wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError, which carries the status code
// and the server's "detail" message and matches the sentinel errors with
// errors.Is: ErrUnauthorized, ErrForbidden, ErrNotFound, ErrValidation,
// ErrServer. Transport failures match ErrUnavailable and bodies that cannot
// be decoded or validated match ErrMalformedResponse. Nothing is retried.
//
// Concurrency & Contexts
//
// RESTClient is safe for concurrent use. All operations accept
// context.Context; no timeout is applied unless WithTimeout is given.
package client
