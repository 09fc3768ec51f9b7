package constants

// PermissionRoles maps each permission to the roles allowed to perform it.
var PermissionRoles = map[string][]string{
	ViewData:       {Viewer, Tekniker, Admin, Superadmin},
	StockAdd:       {Tekniker, Admin, Superadmin},
	StockAllocate:  {Tekniker, Admin, Superadmin},
	RequestFulfill: {Admin, Superadmin},
	ManageUsers:    {Superadmin},
}

// AllowedRole returns true if role is in the list of allowed roles for the
// permission.
func AllowedRole(permission, role string) bool {
	for _, r := range PermissionRoles[permission] {
		if r == role {
			return true
		}
	}
	return false
}
