package fakeapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/fittrack/internal/common"
	"github.com/gin-gonic/gin"
)

// conflictError is a common.ErrorAlreadyExists carrying the detail shown
// to the client.
type conflictError string

func (e conflictError) Error() string { return string(e) }
func (e conflictError) Unwrap() error { return common.ErrorAlreadyExists }

const (
	errEmailTaken    = conflictError("Email already registered")
	errUsernameTaken = conflictError("Username already taken")
)

func weekTitle(week int) string {
	return fmt.Sprintf("🔥 %d Week Streak!", week)
}

func milestoneText(n int) string {
	return fmt.Sprintf("Congratulations! You've completed %d workouts. Keep it up!", n)
}

type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func abortWithDetail(c *gin.Context, code int, detail string) {
	c.AbortWithStatusJSON(code, gin.H{"detail": detail})
}

// abortWithValidation answers 422 with the list form of detail.
func abortWithValidation(c *gin.Context, loc, field, msg string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": []fieldError{{
		Loc:  []string{loc, field},
		Msg:  msg,
		Type: "value_error",
	}}})
}

// abortWithStoreError maps store sentinels to statuses. notFound is the
// detail used for common.ErrorNotFound.
func abortWithStoreError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		abortWithDetail(c, http.StatusNotFound, notFound)
	case errors.Is(err, common.ErrorAlreadyExists):
		abortWithDetail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorForbidden):
		abortWithDetail(c, http.StatusForbidden, "Cannot delete admin users")
	case errors.Is(err, common.ErrorUnauthorized):
		abortWithDetail(c, http.StatusUnauthorized, "Incorrect username or password")
	default:
		abortWithDetail(c, http.StatusInternalServerError, err.Error())
	}
}
