package middleware

import (
	"testing"

	"github.com/usedphones/phoneshop-api/internal/core/domain"
)

func TestPolicy_Evaluate(t *testing.T) {
	policy := DefaultPolicy()

	cases := []struct {
		name          string
		path          string
		authenticated bool
		role          domain.Role
		want          Decision
	}{
		{"auth route without session", "/api/auth/login", false, "", Allow},
		{"auth route register without session", "/api/auth/register", false, "", Allow},
		{"protected route without session", "/api/phones", false, "", Unauthenticated},
		{"protected route as customer", "/api/phones", true, domain.RoleCustomer, Allow},
		{"protected route as admin", "/api/phones", true, domain.RoleAdmin, Allow},
		{"auth route as customer", "/api/auth/register", true, domain.RoleCustomer, Forbidden},
		{"auth route as admin", "/api/auth/register", true, domain.RoleAdmin, Allow},
		{"logout as customer", "/api/auth/logout", true, domain.RoleCustomer, Allow},
		{"logout as admin", "/api/auth/logout", true, domain.RoleAdmin, Allow},
		{"outside protected prefix", "/health", false, "", Allow},
		{"metrics outside protected prefix", "/metrics", false, "", Allow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := policy.Evaluate(tc.path, tc.authenticated, tc.role)
			if got != tc.want {
				t.Fatalf("Evaluate(%q, %v, %q) = %v, want %v", tc.path, tc.authenticated, tc.role, got, tc.want)
			}
		})
	}
}

func TestPolicy_CustomRuleTable(t *testing.T) {
	policy := Policy{
		ProtectedPrefix: "/api",
		AuthPrefix:      "/api/auth",
		Rules: []Rule{
			{Prefix: "/api/admin", Roles: []domain.Role{domain.RoleAdmin}},
		},
	}

	if got := policy.Evaluate("/api/admin/reports", true, domain.RoleCustomer); got != Forbidden {
		t.Fatalf("expected Forbidden for customer on admin prefix, got %v", got)
	}
	if got := policy.Evaluate("/api/admin/reports", true, domain.RoleAdmin); got != Allow {
		t.Fatalf("expected Allow for admin on admin prefix, got %v", got)
	}
	if got := policy.Evaluate("/api/phones", true, domain.RoleCustomer); got != Allow {
		t.Fatalf("unmatched prefix must default to Allow for authenticated roles, got %v", got)
	}
}
