package models

// Role labels carried on customer records and admin accounts.
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// DefaultRole is applied when a provisioning request leaves the role blank.
const DefaultRole = RoleCustomer

// KnownRole reports whether the label is one the dashboard understands.
func KnownRole(role string) bool {
	switch role {
	case RoleCustomer, RoleStaff, RoleManager, RoleAdmin:
		return true
	}
	return false
}
