package domain

import "testing"

func TestAccount_HasPassword(t *testing.T) {
	tests := []struct {
		name     string
		account  Account
		expected bool
	}{
		{"with hash", Account{PasswordHash: "$2a$10$abcdef"}, true},
		{"otp-only account", Account{Mobile: "09120000000"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.account.HasPassword(); got != tt.expected {
				t.Errorf("HasPassword() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestVerifyResult_RoleSelectionPending(t *testing.T) {
	issued := VerifyResult{Token: "jwt", Account: &Account{ID: 1}}
	if issued.RoleSelectionPending() {
		t.Error("result with a token must not be pending")
	}

	pending := VerifyResult{
		Account: &Account{ID: 1},
		Roles:   []RoleOption{{ID: 1, Name: "customer"}, {ID: 2, Name: "operator"}},
	}
	if !pending.RoleSelectionPending() {
		t.Error("result without a token must be pending")
	}
}
