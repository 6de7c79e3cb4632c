package entities

type Role string

const (
	RoleClient   Role = "client"
	RoleSupplier Role = "supplier"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleSupplier, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// Privileged roles may bill, confirm payments and fulfil orders.
func (r Role) Privileged() bool {
	return r == RoleManager || r == RoleAdmin
}

// User is the authenticated caller as carried in the access token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}
