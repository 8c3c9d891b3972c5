package models

import "strings"

// User is the caller's identity as returned by /auth/me and /admin/users.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt Time   `json:"created_at"`
}

func (u *User) Validate() error {
	if u.ID <= 0 {
		return invalid("user id must be positive, got %d", u.ID)
	}
	if strings.TrimSpace(u.Username) == "" {
		return invalid("user %d has empty username", u.ID)
	}
	return nil
}

// RegisterInput is the body of POST /auth/register.
type RegisterInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin,omitempty"`
}

func (r *RegisterInput) Validate() error {
	switch {
	case strings.TrimSpace(r.Email) == "":
		return invalid("email is required")
	case strings.TrimSpace(r.Username) == "":
		return invalid("username is required")
	case r.Password == "":
		return invalid("password is required")
	}
	return nil
}

// Token is the response of POST /auth/login.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (t *Token) Validate() error {
	if t.AccessToken == "" {
		return invalid("empty access token")
	}
	return nil
}

// MessageResponse is the generic {"message": "..."} acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

func (m *MessageResponse) Validate() error { return nil }
