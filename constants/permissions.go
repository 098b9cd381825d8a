package constants

// Actor roles, ascending privilege
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// Organization permissions
const (
	// Admin permissions
	PermAdminFull    = "solva-travel.admin.full-permit"
	PermStaffFull    = "solva-travel.staff.full-permit"
	PermCustomerFull = "solva-travel.customer.full-permit"

	// Special permissions
	PermAny = "any"
)

// Permission groups for convenience
var (
	// StaffTierPermissions covers both staff and admin; the booking engine
	// treats them identically (admin privileges matter elsewhere).
	StaffTierPermissions = []string{
		PermStaffFull,
		PermAdminFull,
	}
)
