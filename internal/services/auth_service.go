package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mr-Mosio/BaranBackend/domain"
	"go.uber.org/zap"
)

// AuthServiceImpl implements domain.AuthService, the two-step
// mobile-number login/registration flow.
type AuthServiceImpl struct {
	accountRepo domain.AccountRepository
	otpSvc      domain.OTPService
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	defaultRole string
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	accountRepo domain.AccountRepository,
	otpSvc domain.OTPService,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	defaultRole string,
	logger *zap.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		accountRepo: accountRepo,
		otpSvc:      otpSvc,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		defaultRole: defaultRole,
		logger:      logger,
	}
}

// CheckMobile implements domain.AuthService. Unknown mobiles and accounts
// without a password get an OTP; accounts with a password only get one when
// forceOTP is set. Never creates an account.
func (s *AuthServiceImpl) CheckMobile(ctx context.Context, mobile string, forceOTP bool) (*domain.CheckMobileResult, error) {
	account, err := s.accountRepo.FindByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			if err := s.otpSvc.IssueIfAbsent(ctx, mobile); err != nil {
				return nil, fmt.Errorf("failed to issue OTP: %w", err)
			}
			return &domain.CheckMobileResult{HasPassword: false, OTPSent: true}, nil
		}
		return nil, err
	}

	hasPassword := account.HasPassword()

	if !hasPassword || forceOTP {
		if err := s.otpSvc.IssueIfAbsent(ctx, mobile); err != nil {
			return nil, fmt.Errorf("failed to issue OTP: %w", err)
		}
		return &domain.CheckMobileResult{HasPassword: hasPassword, OTPSent: true}, nil
	}

	return &domain.CheckMobileResult{HasPassword: true, OTPSent: false}, nil
}

// Verify implements domain.AuthService. The password branch wins when both
// credentials are supplied. OTP verification creates the account on first
// login and assigns it the default role.
func (s *AuthServiceImpl) Verify(ctx context.Context, mobile, password, code string, roleID *uint) (*domain.VerifyResult, error) {
	var account *domain.Account

	switch {
	case password != "":
		found, err := s.accountRepo.FindByMobile(ctx, mobile)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrInvalidCredentials
			}
			return nil, err
		}
		if !found.HasPassword() {
			return nil, domain.ErrInvalidCredentials
		}
		if !s.passwordSvc.Verify(found.PasswordHash, password) {
			return nil, domain.ErrInvalidCredentials
		}
		account = found

	case code != "":
		if err := s.otpSvc.Consume(ctx, mobile, code); err != nil {
			return nil, err
		}
		found, err := s.accountRepo.FindByMobile(ctx, mobile)
		if err != nil {
			if !errors.Is(err, domain.ErrUserNotFound) {
				return nil, err
			}
			found, err = s.registerAccount(ctx, mobile)
			if err != nil {
				return nil, err
			}
		}
		account = found

	default:
		return nil, domain.ErrCredentialRequired
	}

	if account == nil {
		return nil, domain.ErrAccountResolution
	}

	roles := account.Roles
	if len(roles) == 0 {
		return nil, domain.ErrNoRolesAssigned
	}

	// Multiple roles and no selection: hand the choice back to the caller.
	// This is not a failure.
	if len(roles) > 1 && roleID == nil {
		return &domain.VerifyResult{
			Account: account,
			Roles:   roleOptions(roles),
		}, nil
	}

	var selectedRoleID uint
	switch {
	case len(roles) == 1:
		// A single role is auto-selected, whatever role_id says.
		selectedRoleID = roles[0].ID
	case roleID != nil:
		for _, role := range roles {
			if role.ID == *roleID {
				selectedRoleID = *roleID
				break
			}
		}
		if selectedRoleID == 0 {
			return nil, domain.ErrInvalidRoleID
		}
	}

	if selectedRoleID == 0 {
		return nil, domain.ErrRoleSelectionRequired
	}

	token, err := s.tokenSvc.Generate(account.ID, account.Mobile, &selectedRoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.VerifyResult{Token: token, Account: account}, nil
}

// GetAuthenticatedUser implements domain.AuthService. Returns the sanitized
// profile with role names and the deduplicated permission set.
func (s *AuthServiceImpl) GetAuthenticatedUser(ctx context.Context, accountID uint) (*domain.Profile, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	roles := make([]string, 0, len(account.Roles))
	permissions := make(map[string]bool)
	for _, role := range account.Roles {
		roles = append(roles, role.Name)
		for _, perm := range role.Permissions {
			permissions[perm.Name] = true
		}
	}

	return &domain.Profile{
		ID:          account.ID,
		Mobile:      account.Mobile,
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		Email:       account.Email,
		Roles:       roles,
		Permissions: permissions,
	}, nil
}

// registerAccount creates an account holding only the mobile number and
// assigns it the default role, then reloads it with its role assignments.
func (s *AuthServiceImpl) registerAccount(ctx context.Context, mobile string) (*domain.Account, error) {
	account := &domain.Account{Mobile: mobile}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	if err := s.accountRepo.AssignRole(ctx, account.ID, s.defaultRole); err != nil {
		return nil, fmt.Errorf("failed to assign default role: %w", err)
	}

	s.logger.Info("account registered",
		zap.Uint("account_id", account.ID),
		zap.String("mobile", mobile),
		zap.String("role", s.defaultRole),
	)

	return s.accountRepo.FindByMobile(ctx, mobile)
}

func roleOptions(roles []domain.Role) []domain.RoleOption {
	options := make([]domain.RoleOption, 0, len(roles))
	for _, role := range roles {
		options = append(options, domain.RoleOption{ID: role.ID, Name: role.Name})
	}
	return options
}
