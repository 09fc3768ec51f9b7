package constants

// Application roles, least to most privileged.
const (
	Viewer     = "viewer"
	Tekniker   = "tekniker"
	Admin      = "admin"
	Superadmin = "superadmin"
)
