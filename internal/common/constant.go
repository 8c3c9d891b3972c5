// Package common holds constants, sentinel errors and small helpers shared
// by the FitTrack client and the fake backend.
package common

// HTTP header names used on every API request.
const (
	AuthorizationHeader = "Authorization"
	BearerPrefix        = "Bearer "
	RequestIDHeader     = "X-Request-ID"
)
