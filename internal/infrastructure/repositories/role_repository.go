package repositories

import (
	"context"
	"errors"

	"github.com/Mr-Mosio/BaranBackend/domain"
	"gorm.io/gorm"
)

// RoleRepositoryImpl implements domain.RoleRepository using GORM
type RoleRepositoryImpl struct {
	db *gorm.DB
}

// DBRole represents the database model for Role (with GORM tags)
type DBRole struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"uniqueIndex;size:64"`
	Permissions []DBPermission `gorm:"many2many:role_permissions"`
}

// TableName returns the table name for GORM
func (DBRole) TableName() string {
	return "roles"
}

// DBPermission represents the database model for Permission (with GORM tags)
type DBPermission struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;size:128"`
}

// TableName returns the table name for GORM
func (DBPermission) TableName() string {
	return "permissions"
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) domain.RoleRepository {
	return &RoleRepositoryImpl{db: db}
}

// Create implements domain.RoleRepository. Permissions named on the role are
// created on the fly when they do not exist yet.
func (r *RoleRepositoryImpl) Create(ctx context.Context, role *domain.Role) error {
	dbRole := DBRole{Name: role.Name}
	for _, perm := range role.Permissions {
		var dbPerm DBPermission
		err := r.db.WithContext(ctx).Where("name = ?", perm.Name).FirstOrCreate(&dbPerm, DBPermission{Name: perm.Name}).Error
		if err != nil {
			return err
		}
		dbRole.Permissions = append(dbRole.Permissions, dbPerm)
	}

	if err := r.db.WithContext(ctx).Create(&dbRole).Error; err != nil {
		return err
	}
	role.ID = dbRole.ID
	return nil
}

// FindByName implements domain.RoleRepository
func (r *RoleRepositoryImpl) FindByName(ctx context.Context, name string) (*domain.Role, error) {
	var dbRole DBRole
	err := r.db.WithContext(ctx).Preload("Permissions").Where("name = ?", name).First(&dbRole).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	role := roleToDomain(&dbRole)
	return &role, nil
}

// List implements domain.RoleRepository
func (r *RoleRepositoryImpl) List(ctx context.Context) ([]domain.Role, error) {
	var dbRoles []DBRole
	if err := r.db.WithContext(ctx).Preload("Permissions").Find(&dbRoles).Error; err != nil {
		return nil, err
	}

	roles := make([]domain.Role, 0, len(dbRoles))
	for _, dbRole := range dbRoles {
		roles = append(roles, roleToDomain(&dbRole))
	}
	return roles, nil
}

// roleToDomain converts a database role to its domain model
func roleToDomain(dbRole *DBRole) domain.Role {
	perms := make([]domain.Permission, 0, len(dbRole.Permissions))
	for _, dbPerm := range dbRole.Permissions {
		perms = append(perms, domain.Permission{ID: dbPerm.ID, Name: dbPerm.Name})
	}
	return domain.Role{
		ID:          dbRole.ID,
		Name:        dbRole.Name,
		Permissions: perms,
	}
}
