// README: Common identifier and role types used across modules.
package types

// ID is an opaque document/user identifier.
type ID string

const (
	RolePassenger = "passenger"
	RoleDriver    = "driver"
	RoleAdmin     = "admin"
)
