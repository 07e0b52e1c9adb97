package rbac

import "github.com/casbin/casbin/v2"

// NewEnforcer memuat model dan policy statis dari file.
// Role sistem fixed, jadi tidak ada reload per tenant.
func NewEnforcer(modelPath, policyPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath, policyPath)
}
