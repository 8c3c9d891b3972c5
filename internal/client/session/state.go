package session

// State is the lifecycle stage of a session.
type State int

const (
	Anonymous State = iota
	Restoring
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Restoring:
		return "restoring"
	case Authenticated:
		return "authenticated"
	}
	return "unknown"
}
