// Package fakeapi is an in-memory FitTrack backend served with gin.
//
// It implements every endpoint the client calls, with the same status codes
// and {"detail": ...} error bodies as the real service. Tests start it with
// httptest; cmd/fakeapi serves it for local development.
package fakeapi
