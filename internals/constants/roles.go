package constants

// User roles. A user starts as a member; approval of a trainer
// application promotes to trainer; admin is assigned at registration
// (at most one active admin account).
const (
	RoleMember  = "member"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

var AllowedRoles = []string{RoleMember, RoleTrainer, RoleAdmin}

func IsValidRole(role string) bool {
	for _, r := range AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
