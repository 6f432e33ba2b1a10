// Package models defines the scheduler data models persisted in the store.
package models

// Role selects one of the two disjoint account namespaces.
type Role string

const (
	RolePatient   Role = "patient"
	RoleCaregiver Role = "caregiver"
)

// Account is a registered patient or caregiver. Usernames are unique
// within a role and may coincide across roles.
type Account struct {
	Role     Role
	UserName string
	Salt     []byte
	Hash     []byte
}

// Valid reports whether r names one of the two namespaces.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleCaregiver
}
