package domain

// Session is the process-wide authentication state. Exactly one Session
// exists per running instance; it is replaced as a whole on login/signup and
// reset as a whole on logout.
//
// Invariant: IsAuthenticated == (User != nil).
type Session struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"is_authenticated"`
}

// Anonymous returns the empty session, the initial state of every instance.
func Anonymous() Session {
	return Session{}
}

// Authenticated builds a session for the given user.
func Authenticated(u *User) Session {
	return Session{User: u, IsAuthenticated: true}
}
