// Package metadata is a small key/value store over the local SQLite
// database. The session layer keeps the access token and the cached
// username here.
//
// Get returns (nil, nil) for a missing key.
package metadata
