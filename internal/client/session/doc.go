// Package session owns the client's authentication lifecycle.
//
// # Overview
//
// A Manager moves between three states:
//
//	Anonymous ──Login/Restore──▶ Restoring ──profile ok──▶ Authenticated
//	    ▲                                                       │
//	    └────────────── Logout / failed restore ◀───────────────┘
//
// The access token lives in a Store (SQLite-backed in the terminal client,
// in-memory in tests). The Store is read on every request, so the API
// client is handed the Store itself as its token source.
//
// Role routing is a pure function of the cached identity: see Resolve.
// The server remains the authority on permissions; the is_admin flag only
// decides which commands are offered.
package session
