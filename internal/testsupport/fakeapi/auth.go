package fakeapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/client/models"
	"github.com/dmitrijs2005/fittrack/internal/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	contextUserKey = "user"

	// DefaultTokenTTL is the access token lifetime.
	DefaultTokenTTL = 30 * time.Minute
)

func (s *Server) issueToken(username string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) parseToken(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", common.ErrInvalidToken
	}
	return claims.Subject, nil
}

// requireUser authenticates the bearer token and stores the caller in the
// gin context.
func (s *Server) requireUser(c *gin.Context) {
	header := c.GetHeader(common.AuthorizationHeader)
	if !strings.HasPrefix(header, common.BearerPrefix) {
		abortWithDetail(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	username, err := s.parseToken(strings.TrimPrefix(header, common.BearerPrefix))
	if err != nil {
		abortWithDetail(c, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	u, err := s.store.userByName(username)
	if err != nil {
		abortWithDetail(c, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	c.Set(contextUserKey, u)
	c.Next()
}

// requireAdmin must run after requireUser.
func (s *Server) requireAdmin(c *gin.Context) {
	if !currentUser(c).IsAdmin {
		abortWithDetail(c, http.StatusForbidden, "Admin access required")
		return
	}
	c.Next()
}

func currentUser(c *gin.Context) models.User {
	u, _ := c.MustGet(contextUserKey).(models.User)
	return u
}

func (s *Server) register(c *gin.Context) {
	var in models.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortWithValidation(c, "body", "", err.Error())
		return
	}
	if err := in.Validate(); err != nil {
		abortWithValidation(c, "body", "", err.Error())
		return
	}
	u, err := s.store.register(in)
	if err != nil {
		abortWithStoreError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// login accepts the OAuth2 password form.
func (s *Server) login(c *gin.Context) {
	username, password := c.PostForm("username"), c.PostForm("password")
	switch {
	case username == "":
		abortWithValidation(c, "body", "username", "Field required")
		return
	case password == "":
		abortWithValidation(c, "body", "password", "Field required")
		return
	}
	u, err := s.store.authenticate(username, password)
	if err != nil {
		abortWithStoreError(c, err, "")
		return
	}
	token, err := s.issueToken(u.Username)
	if err != nil {
		abortWithDetail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, models.Token{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) me(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}
