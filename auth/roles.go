/*
Package auth maps office accounts to what they may submit, view, and decide.

PURPOSE:
  The office runs on a small fixed set of accounts. Each carries a role:
  the admin validates and deletes everything, field roles submit into their
  own collections, and the viewer role is read-only for leadership. Login
  exchanges a username and password for a signed token carrying the role.

SEE ALSO:
  - credentials.go: The account table and password check
  - jwt.go: Token minting and verification
*/
package auth

import "github.com/digimons/facility-engine/record"

// =============================================================================
// ROLES
// =============================================================================

type Role string

const (
	RoleAdmin          Role = "admin"
	RoleChecklist      Role = "checklist"
	RoleMaintenance    Role = "maintenance"
	RoleSecurity       Role = "security"
	RoleChecklistMaint Role = "checklist_maintenance"
	RoleViewer         Role = "viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleChecklist, RoleMaintenance, RoleSecurity, RoleChecklistMaint, RoleViewer:
		return true
	}
	return false
}

// Capabilities returns the record engine capabilities for the role. Only
// the admin validates or deletes.
func (r Role) Capabilities() record.Capabilities {
	if r == RoleAdmin {
		return record.Capabilities{Validate: true, Delete: true}
	}
	return record.Capabilities{}
}

// CanSubmit reports whether the role may create records in the collection.
// Complaints are open to every authenticated account.
func (r Role) CanSubmit(c record.Collection) bool {
	if r == RoleViewer {
		return c == record.Complaints
	}
	if r == RoleAdmin || c == record.Complaints {
		return true
	}
	switch c {
	case record.Cleaning:
		return r == RoleChecklist || r == RoleChecklistMaint
	case record.Maintenance:
		return r == RoleMaintenance || r == RoleChecklistMaint
	case record.Security:
		return r == RoleSecurity
	}
	return false
}

// CanView reports whether the role may read the collection. Every role sees
// the dashboard and recaps, so viewing is open across collections.
func (r Role) CanView(record.Collection) bool { return r.Valid() }

// Actor builds the record engine identity for a named account.
func (r Role) Actor(name string) record.Actor {
	return record.Actor{Name: name, Capabilities: r.Capabilities()}
}
