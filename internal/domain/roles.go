package domain

const (
	RoleDeveloper  = "DEVELOPER"
	RoleAdmin      = "ADMIN"
	RoleAccounts   = "ACCOUNTS"
	RoleContractor = "CONTRACTOR"
	RoleMember     = "MEMBER"
)

// AllRoles adalah daftar role yang valid untuk validasi input.
var AllRoles = []string{
	RoleDeveloper,
	RoleAdmin,
	RoleAccounts,
	RoleContractor,
	RoleMember,
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsPrivilegedRole melaporkan role yang tidak dibatasi visibility filter:
// mereka melihat semua project tanpa scoping membership.
func IsPrivilegedRole(role string) bool {
	switch role {
	case RoleDeveloper, RoleAdmin, RoleAccounts:
		return true
	default:
		return false
	}
}

// EnforceRequest adalah input untuk RBAC enforcement berbasis role statis.
type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}
