// Package services holds the client-side logic behind each screen of the
// terminal client: workout history, strength logging, the dashboard
// overview, the notification inbox, the AI assistant, the profile and the
// admin console.
//
// Services talk to the backend through the narrow interfaces of package
// client and never touch the session; authentication is handled by
// package session and the token source of the API client.
package services
