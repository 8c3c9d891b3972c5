// Package models defines the data shapes exchanged with the FitTrack API.
//
// Every response type implements Validate, which the API client runs right
// after decoding so a malformed payload fails at the transport boundary
// instead of leaking half-filled values into the terminal client.
package models
