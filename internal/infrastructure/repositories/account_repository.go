package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Mr-Mosio/BaranBackend/domain"
	"gorm.io/gorm"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID           uint     `gorm:"primaryKey"`
	Mobile       string   `gorm:"uniqueIndex;size:32"`
	PasswordHash string   `gorm:"column:password"`
	FirstName    string   `gorm:"size:128"`
	LastName     string   `gorm:"size:128"`
	Email        string   `gorm:"size:255"`
	Roles        []DBRole `gorm:"many2many:account_roles"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "accounts"
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	dbAccount := r.domainToDB(account)
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		return err
	}
	account.ID = dbAccount.ID
	return nil
}

// FindByMobile implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByMobile(ctx context.Context, mobile string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Preload("Roles").Where("mobile = ?", mobile).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Preload("Roles.Permissions").Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// AssignRole implements domain.AccountRepository
func (r *AccountRepositoryImpl) AssignRole(ctx context.Context, accountID uint, roleName string) error {
	var dbRole DBRole
	err := r.db.WithContext(ctx).Where("name = ?", roleName).First(&dbRole).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRoleNotFound
		}
		return err
	}

	account := DBAccount{ID: accountID}
	return r.db.WithContext(ctx).Model(&account).Association("Roles").Append(&dbRole)
}

// domainToDB converts a domain account to its database model
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:           account.ID,
		Mobile:       account.Mobile,
		PasswordHash: account.PasswordHash,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Email:        account.Email,
	}
}

// dbToDomain converts a database account to its domain model
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	roles := make([]domain.Role, 0, len(dbAccount.Roles))
	for _, dbRole := range dbAccount.Roles {
		roles = append(roles, roleToDomain(&dbRole))
	}

	return &domain.Account{
		ID:           dbAccount.ID,
		Mobile:       dbAccount.Mobile,
		PasswordHash: dbAccount.PasswordHash,
		FirstName:    dbAccount.FirstName,
		LastName:     dbAccount.LastName,
		Email:        dbAccount.Email,
		Roles:        roles,
		CreatedAt:    dbAccount.CreatedAt,
		UpdatedAt:    dbAccount.UpdatedAt,
	}
}
