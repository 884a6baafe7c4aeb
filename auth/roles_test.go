package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/digimons/facility-engine/auth"
	"github.com/digimons/facility-engine/record"
)

// =============================================================================
// CAPABILITIES
// =============================================================================

func TestCapabilities_OnlyAdminValidatesAndDeletes(t *testing.T) {
	assert.Equal(t, record.Capabilities{Validate: true, Delete: true}, auth.RoleAdmin.Capabilities())

	for _, r := range []auth.Role{auth.RoleChecklist, auth.RoleMaintenance, auth.RoleSecurity, auth.RoleChecklistMaint, auth.RoleViewer} {
		assert.Equal(t, record.Capabilities{}, r.Capabilities(), string(r))
	}
}

func TestActor_CarriesNameAndCapabilities(t *testing.T) {
	actor := auth.RoleAdmin.Actor("Pegawai PA Prabumulih")

	assert.Equal(t, "Pegawai PA Prabumulih", actor.Name)
	assert.True(t, actor.Capabilities.Validate)
}

// =============================================================================
// SUBMISSION RIGHTS
// =============================================================================

func TestCanSubmit_ComplaintsOpenToEveryRole(t *testing.T) {
	for _, r := range []auth.Role{auth.RoleAdmin, auth.RoleChecklist, auth.RoleMaintenance, auth.RoleSecurity, auth.RoleChecklistMaint, auth.RoleViewer} {
		assert.True(t, r.CanSubmit(record.Complaints), string(r))
	}
}

func TestCanSubmit_FieldRolesStayInTheirLane(t *testing.T) {
	cases := []struct {
		role       auth.Role
		collection record.Collection
		want       bool
	}{
		{auth.RoleChecklist, record.Cleaning, true},
		{auth.RoleChecklist, record.Maintenance, false},
		{auth.RoleChecklist, record.Security, false},
		{auth.RoleMaintenance, record.Maintenance, true},
		{auth.RoleMaintenance, record.Cleaning, false},
		{auth.RoleChecklistMaint, record.Cleaning, true},
		{auth.RoleChecklistMaint, record.Maintenance, true},
		{auth.RoleChecklistMaint, record.Security, false},
		{auth.RoleSecurity, record.Security, true},
		{auth.RoleSecurity, record.Cleaning, false},
		{auth.RoleViewer, record.Cleaning, false},
		{auth.RoleViewer, record.Security, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.role.CanSubmit(tc.collection), "%s -> %s", tc.role, tc.collection)
	}
}

func TestCanSubmit_AdminSubmitsEverywhere(t *testing.T) {
	for _, c := range record.Collections() {
		assert.True(t, auth.RoleAdmin.CanSubmit(c), string(c))
	}
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, auth.RoleChecklistMaint.Valid())
	assert.False(t, auth.Role("superuser").Valid())
}
