package auth

import (
	"crypto/subtle"
	"errors"
)

// =============================================================================
// ACCOUNT TABLE
// =============================================================================

var ErrBadCredentials = errors.New("auth: unknown username or wrong password")

// Account is one office login. The directory is small and managed through
// configuration rather than a user database.
type Account struct {
	Username string `yaml:"username" env-required:"true"`
	Password string `yaml:"password" env-required:"true"`
	Name     string `yaml:"name"`
	Role     Role   `yaml:"role"`
}

// Directory resolves usernames to accounts for login.
type Directory struct {
	accounts map[string]Account
}

// NewDirectory indexes the configured accounts. Accounts with an unknown
// role are demoted to viewer rather than rejected, so a typo in the config
// never locks anyone into a broken role.
func NewDirectory(accounts []Account) *Directory {
	idx := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		if !a.Role.Valid() {
			a.Role = RoleViewer
		}
		if a.Name == "" {
			a.Name = a.Username
		}
		idx[a.Username] = a
	}
	return &Directory{accounts: idx}
}

// Authenticate checks the password with a constant-time comparison and
// returns the matching account.
func (d *Directory) Authenticate(username, password string) (Account, error) {
	a, ok := d.accounts[username]
	if !ok {
		return Account{}, ErrBadCredentials
	}
	if subtle.ConstantTimeCompare([]byte(a.Password), []byte(password)) != 1 {
		return Account{}, ErrBadCredentials
	}
	return a, nil
}

// DefaultAccounts is the seed directory used when the configuration does
// not override it.
func DefaultAccounts() []Account {
	return []Account{
		{Username: "PAPrabumulih", Password: "Prabumulih2026", Name: "Pegawai PA Prabumulih", Role: RoleAdmin},
		{Username: "Admin1", Password: "PAPrabumulih", Name: "Petugas Sarpras (Admin1)", Role: RoleChecklistMaint},
		{Username: "Admin2", Password: "PAPrabumulih", Name: "Petugas Keamanan (Admin2)", Role: RoleSecurity},
		{Username: "Pegawai", Password: "PAPrabumulih", Name: "Pegawai (Lihat Saja)", Role: RoleViewer},
	}
}
