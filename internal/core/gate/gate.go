// Package gate decides, for each navigation to a role-scoped section,
// whether the caller may proceed or where they must be redirected instead.
// Decisions are pure functions of a single session snapshot; nothing is
// cached between navigations.
package gate

import "github.com/agriportal/analytics-api/internal/core/domain"

// LandingPath is where unauthenticated callers are sent.
const LandingPath = "/"

// Decision is the outcome of an authorization check: either proceed, or
// redirect to RedirectTo.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Allowed is the proceed decision.
func Allowed() Decision {
	return Decision{Allow: true}
}

// Redirect is a denial pointing at the given path.
func Redirect(to string) Decision {
	return Decision{RedirectTo: to}
}

// Authorize checks a navigation against the session snapshot. required may
// be empty, meaning any authenticated identity is acceptable.
//
//   - anonymous session        → redirect to the landing screen
//   - wrong role for required  → redirect to the caller's own dashboard
//   - otherwise                → allow
func Authorize(sess domain.Session, required domain.Role) Decision {
	if !sess.IsAuthenticated || sess.User == nil {
		return Redirect(LandingPath)
	}
	if required != "" && sess.User.Role != required {
		return Redirect(sess.User.Role.DashboardPath())
	}
	return Allowed()
}

// HomeRedirect resolves the legacy role-less /dashboard path: authenticated
// callers are redirected to their own role home, everyone else to the
// landing screen. Both the authentication check and the target are computed
// from the one snapshot passed in.
func HomeRedirect(sess domain.Session) Decision {
	if !sess.IsAuthenticated || sess.User == nil {
		return Redirect(LandingPath)
	}
	return Redirect(sess.User.Role.DashboardPath())
}
