// Package access decides whether a navigation target is permitted for the
// current session, and where to send the request instead when it is not.
// Decisions are pure; actual navigation belongs to the caller.
package access

import (
	"fmt"
	"sort"
	"strings"

	"fieldforce/internal/domain/workforce"
	"fieldforce/internal/session"
)

// Decision is the outcome of an authorization check: either the navigation
// may proceed, or the caller must redirect to Target.
type Decision struct {
	Allowed bool
	Target  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func RedirectTo(path string) Decision {
	return Decision{Target: path}
}

type rule struct {
	prefix string
	roles  map[workforce.Role]struct{}
}

// Gate holds the route policy table. Construct one with NewGate; the zero
// value denies nothing and is not meaningful.
type Gate struct {
	rules []rule
}

// Policy maps a protected route prefix to the roles allowed under it. An
// empty role set is a configuration error, never an implicit deny-all.
type Policy map[string][]workforce.Role

// DefaultPolicy mirrors the portal's route tree: /app requires any
// authenticated role, /app/admin is HR only, /app/pm is PM only.
func DefaultPolicy() Policy {
	return Policy{
		PathApp: {
			workforce.RoleHRAdmin,
			workforce.RolePM,
			workforce.RoleForeman,
			workforce.RoleWorker,
		},
		PathAdmin: {workforce.RoleHRAdmin},
		PathPM:    {workforce.RolePM},
	}
}

func NewGate(policy Policy) (*Gate, error) {
	g := &Gate{}
	for prefix, roles := range policy {
		if len(roles) == 0 {
			return nil, fmt.Errorf("access policy for %q: %w: empty role set", prefix, workforce.ErrConfiguration)
		}
		set := make(map[workforce.Role]struct{}, len(roles))
		for _, r := range roles {
			set[r] = struct{}{}
		}
		g.rules = append(g.rules, rule{prefix: prefix, roles: set})
	}
	// Longest prefix wins, so /app/admin is checked before /app.
	sort.Slice(g.rules, func(i, j int) bool {
		return len(g.rules[i].prefix) > len(g.rules[j].prefix)
	})
	return g, nil
}

// Authorize resolves a navigation request. A nil session on a protected
// path redirects to login; a valid session with an insufficient role is
// sent back through the role-dispatch alias /app, never to login. A role
// that is not even allowed under /app goes straight to its home path.
func (g *Gate) Authorize(sess *session.Session, path string) Decision {
	matched := g.match(path)
	if matched == nil {
		return Allow()
	}
	if sess == nil {
		return RedirectTo(PathLogin)
	}
	if _, ok := matched.roles[sess.Identity.Role]; !ok {
		if matched.prefix == PathApp {
			return RedirectTo(HomeForRole(sess.Identity.Role))
		}
		return RedirectTo(PathApp)
	}
	return Allow()
}

// ResolveIndex dispatches the bare /app route to the session's role home,
// or to login when there is no session.
func (g *Gate) ResolveIndex(sess *session.Session) string {
	if sess == nil {
		return PathLogin
	}
	return HomeForRole(sess.Identity.Role)
}

func (g *Gate) match(path string) *rule {
	for i := range g.rules {
		if pathHasPrefix(path, g.rules[i].prefix) {
			return &g.rules[i]
		}
	}
	return nil
}

// pathHasPrefix matches on path segments, so /application is not under
// /app.
func pathHasPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}

// HomeForRole maps every role to its landing path. The mapping is total:
// roles without a dedicated workspace land on login.
func HomeForRole(role workforce.Role) string {
	switch role {
	case workforce.RoleHRAdmin:
		return PathAdminDashboard
	case workforce.RolePM:
		return PathPMDashboardCurrent
	default:
		return PathLogin
	}
}
