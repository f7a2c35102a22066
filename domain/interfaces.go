package domain

import "context"

// AccountRepository defines account data access operations
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	// FindByMobile loads an account with its role assignments.
	FindByMobile(ctx context.Context, mobile string) (*Account, error)
	// FindByID loads an account with roles and their permissions.
	FindByID(ctx context.Context, id uint) (*Account, error)
	AssignRole(ctx context.Context, accountID uint, roleName string) error
}

// RoleRepository defines role data access operations
type RoleRepository interface {
	Create(ctx context.Context, role *Role) error
	FindByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context) ([]Role, error)
}

// OTPRepository defines one-time passcode persistence. Implementations must
// make Consume atomic: two concurrent calls with the same valid code may not
// both succeed.
type OTPRepository interface {
	// CreateIfAbsent persists the code unless an unexpired one already exists
	// for the mobile. Returns false when a live code was kept.
	CreateIfAbsent(ctx context.Context, otp *OTPCode) (bool, error)
	// Consume matches and invalidates the code in one step.
	Consume(ctx context.Context, mobile, code string) error
}

// AuthService defines the two-step authentication flow
type AuthService interface {
	CheckMobile(ctx context.Context, mobile string, forceOTP bool) (*CheckMobileResult, error)
	Verify(ctx context.Context, mobile, password, code string, roleID *uint) (*VerifyResult, error)
	GetAuthenticatedUser(ctx context.Context, accountID uint) (*Profile, error)
}

// OTPService defines OTP lifecycle operations
type OTPService interface {
	IssueIfAbsent(ctx context.Context, mobile string) error
	Consume(ctx context.Context, mobile, code string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations
type TokenService interface {
	Generate(accountID uint, mobile string, roleID *uint) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines outbound delivery operations
type NotificationService interface {
	SendSMS(to, message string) error
}

// PolicyService exposes permission decisions backed by the role model
type PolicyService interface {
	SyncFromRoles(ctx context.Context) error
	HasPermission(roleName, permission string) (bool, error)
}

// TokenClaims represents the verified contents of a session token
type TokenClaims struct {
	AccountID uint   `json:"id"`
	Mobile    string `json:"mobile"`
	RoleID    *uint  `json:"role_id,omitempty"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
