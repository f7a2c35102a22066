package domain

import "time"

// Account is the authenticated principal, identified by its mobile number.
type Account struct {
	ID           uint
	Mobile       string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
	Roles        []Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether a password credential is set for the account.
func (a *Account) HasPassword() bool {
	return a.PasswordHash != ""
}

// Role is a named bundle of permissions assignable to accounts.
type Role struct {
	ID          uint
	Name        string
	Permissions []Permission
}

// Permission names a single capability.
type Permission struct {
	ID   uint
	Name string
}

// OTPCode is a one-time numeric passcode challenge tied to a mobile number.
type OTPCode struct {
	Mobile    string
	Code      string
	ExpiresAt time.Time
}

// CheckMobileResult is the outcome of the first authentication step.
type CheckMobileResult struct {
	HasPassword bool
	OTPSent     bool
}

// RoleOption is a selectable role presented during multi-role disambiguation.
type RoleOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// VerifyResult is the outcome of the second authentication step. Either Token
// is set (authentication completed) or Roles is populated and the caller must
// re-invoke verification with a chosen role.
type VerifyResult struct {
	Token   string
	Account *Account
	Roles   []RoleOption
}

// RoleSelectionPending reports whether the caller still has to pick a role.
func (r *VerifyResult) RoleSelectionPending() bool {
	return r.Token == ""
}

// Profile is the sanitized account projection returned to authenticated
// clients. Permissions are flattened across all assigned roles.
type Profile struct {
	ID          uint
	Mobile      string
	FirstName   string
	LastName    string
	Email       string
	Roles       []string
	Permissions map[string]bool
}
