package middleware

import (
	"strings"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
)

// Decision is the outcome of evaluating the route policy for one request.
type Decision int

const (
	Allow Decision = iota
	Unauthenticated
	Forbidden
)

// Rule binds a path prefix to the set of roles allowed through. An empty
// role set denies every role. Rules are evaluated in order; the first prefix
// match wins.
type Rule struct {
	Prefix string
	Roles  []domain.Role
}

// Policy is the declarative route/role matrix the gate consults.
// ProtectedPrefix scopes the gate: paths outside it (health, metrics,
// swagger) pass untouched. AuthPrefix names the entry points
// (register/login/logout) that bypass the authentication check.
type Policy struct {
	ProtectedPrefix string
	AuthPrefix      string
	Rules           []Rule
}

// DefaultPolicy is the storefront policy: auth entry points are open, the
// customer role is explicitly denied on auth-prefixed paths (kept from the
// reference even though the auth bypass makes the rule mostly redundant),
// and any authenticated role passes everywhere else. Logout is carved out of
// the deny rule: it must return 200 for every caller, including a customer
// holding a live session, or that session could never be terminated.
func DefaultPolicy() Policy {
	return Policy{
		ProtectedPrefix: "/api",
		AuthPrefix:      "/api/auth",
		Rules: []Rule{
			{Prefix: "/api/auth/logout", Roles: []domain.Role{domain.RoleCustomer, domain.RoleAdmin}},
			{Prefix: "/api/auth", Roles: []domain.Role{domain.RoleAdmin}},
		},
	}
}

// Evaluate is a pure function from the request path and session state to a
// gate decision. It performs no I/O.
func (p Policy) Evaluate(path string, authenticated bool, role domain.Role) Decision {
	if !strings.HasPrefix(path, p.ProtectedPrefix) {
		return Allow
	}
	if p.IsAuthRoute(path) && !authenticated {
		return Allow
	}
	if !authenticated {
		return Unauthenticated
	}
	for _, rule := range p.Rules {
		if !strings.HasPrefix(path, rule.Prefix) {
			continue
		}
		for _, allowed := range rule.Roles {
			if allowed == role {
				return Allow
			}
		}
		return Forbidden
	}
	return Allow
}

// IsAuthRoute reports whether the path addresses an auth entry point.
func (p Policy) IsAuthRoute(path string) bool {
	return strings.HasPrefix(path, p.AuthPrefix)
}
