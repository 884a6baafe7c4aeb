package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimons/facility-engine/auth"
)

// =============================================================================
// ACCOUNT DIRECTORY
// =============================================================================

func TestAuthenticate_KnownAccount(t *testing.T) {
	d := auth.NewDirectory(auth.DefaultAccounts())

	a, err := d.Authenticate("Admin1", "PAPrabumulih")

	require.NoError(t, err)
	assert.Equal(t, auth.RoleChecklistMaint, a.Role)
	assert.Equal(t, "Petugas Sarpras (Admin1)", a.Name)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	d := auth.NewDirectory(auth.DefaultAccounts())

	_, err := d.Authenticate("Admin1", "nope")

	assert.ErrorIs(t, err, auth.ErrBadCredentials)
}

func TestAuthenticate_UnknownUsername(t *testing.T) {
	d := auth.NewDirectory(auth.DefaultAccounts())

	_, err := d.Authenticate("ghost", "PAPrabumulih")

	assert.ErrorIs(t, err, auth.ErrBadCredentials)
}

func TestNewDirectory_NormalizesBrokenEntries(t *testing.T) {
	// GIVEN a config entry with a typo role and no display name
	d := auth.NewDirectory([]auth.Account{
		{Username: "Satpam", Password: "rahasia", Role: auth.Role("sekuriti")},
	})

	// WHEN the account authenticates
	a, err := d.Authenticate("Satpam", "rahasia")

	// THEN it is demoted to viewer and named after the username
	require.NoError(t, err)
	assert.Equal(t, auth.RoleViewer, a.Role)
	assert.Equal(t, "Satpam", a.Name)
}

// =============================================================================
// SESSION TOKENS
// =============================================================================

func TestTokens_IssueVerifyRoundTrip(t *testing.T) {
	// GIVEN a token minted for the maintenance account
	m := auth.NewTokenManager("test-secret", "facility-engine", time.Hour)
	token, err := m.Issue(auth.Account{
		Username: "Admin1",
		Name:     "Petugas Sarpras (Admin1)",
		Role:     auth.RoleChecklistMaint,
	})
	require.NoError(t, err)

	// WHEN it is verified
	sess, err := m.Verify(token)

	// THEN the session carries the account identity and role
	require.NoError(t, err)
	assert.Equal(t, "Admin1", sess.Username)
	assert.Equal(t, "Petugas Sarpras (Admin1)", sess.Name)
	assert.Equal(t, auth.RoleChecklistMaint, sess.Role)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := auth.NewTokenManager("secret-a", "facility-engine", time.Hour).
		Issue(auth.Account{Username: "Admin1", Role: auth.RoleViewer})
	require.NoError(t, err)

	_, err = auth.NewTokenManager("secret-b", "facility-engine", time.Hour).Verify(token)

	assert.Error(t, err)
}

func TestVerify_WrongIssuer(t *testing.T) {
	token, err := auth.NewTokenManager("test-secret", "someone-else", time.Hour).
		Issue(auth.Account{Username: "Admin1", Role: auth.RoleViewer})
	require.NoError(t, err)

	_, err = auth.NewTokenManager("test-secret", "facility-engine", time.Hour).Verify(token)

	assert.Error(t, err)
}

func TestVerify_ExpiredToken(t *testing.T) {
	m := auth.NewTokenManager("test-secret", "facility-engine", -time.Minute)
	token, err := m.Issue(auth.Account{Username: "Admin1", Role: auth.RoleViewer})
	require.NoError(t, err)

	_, err = m.Verify(token)

	assert.Error(t, err)
}

func TestVerify_EmptyToken(t *testing.T) {
	m := auth.NewTokenManager("test-secret", "facility-engine", time.Hour)

	_, err := m.Verify("")

	assert.Error(t, err)
}
