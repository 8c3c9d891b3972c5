package session

import "github.com/dmitrijs2005/fittrack/internal/client/models"

// Surface is a group of screens (REPL commands) gated by role.
type Surface int

const (
	Home Surface = iota
	Login
	Dashboard
	Admin
)

func (s Surface) String() string {
	switch s {
	case Home:
		return "home"
	case Login:
		return "login"
	case Dashboard:
		return "dashboard"
	case Admin:
		return "admin"
	}
	return "unknown"
}

// Landing returns the surface a user lands on after authentication.
func Landing(u *models.User) Surface {
	switch {
	case u == nil:
		return Login
	case u.IsAdmin:
		return Admin
	default:
		return Dashboard
	}
}

// Resolve returns the surface actually shown when u asks for requested.
//
// Anonymous callers always get Login. Authenticated callers asking for
// Login or Home go to their landing surface. Dashboard is for non-admins
// and Admin is for admins; crossing over redirects to Login.
func Resolve(u *models.User, requested Surface) Surface {
	if u == nil {
		return Login
	}
	switch requested {
	case Home, Login:
		return Landing(u)
	case Dashboard:
		if u.IsAdmin {
			return Login
		}
		return Dashboard
	case Admin:
		if !u.IsAdmin {
			return Login
		}
		return Admin
	}
	return Login
}
