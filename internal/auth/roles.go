package auth

// Role is the closed set of user roles. The hierarchy is
// customer < admin < superadmin.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

var roleRank = map[Role]int{
	RoleCustomer:   0,
	RoleAdmin:      1,
	RoleSuperadmin: 2,
}

func ParseRole(s string) (Role, bool) {
	r := Role(s)
	_, ok := roleRank[r]
	return r, ok
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r sits at or above min in the hierarchy.
// Unknown roles rank below customer.
func (r Role) AtLeast(min Role) bool {
	rr, ok := roleRank[r]
	if !ok {
		return false
	}
	return rr >= roleRank[min]
}

func (r Role) CanManageCatalog() bool { return r.AtLeast(RoleAdmin) }

func (r Role) CanManageOrders() bool { return r.AtLeast(RoleAdmin) }

// CanManageUsers gates hard user deletion.
func (r Role) CanManageUsers() bool { return r == RoleSuperadmin }
