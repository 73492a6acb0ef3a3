package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainUser "github.com/AzielCF/az-photofeed/domains/user"
	pkgError "github.com/AzielCF/az-photofeed/pkg/error"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// AutoMigrate ensures the user, role and permission tables exist.
func (r *GormUserRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domainUser.User{},
		&domainUser.Role{},
		&domainUser.Permission{},
	)
}

func (r *GormUserRepository) Create(ctx context.Context, user *domainUser.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	var user domainUser.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("email = ?", email).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgError.NotFoundError("user not found")
	}
	return &user, err
}

func (r *GormUserRepository) GetByID(ctx context.Context, id string) (*domainUser.User, error) {
	var user domainUser.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("id = ?", id).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgError.NotFoundError("user not found")
	}
	return &user, err
}

func (r *GormUserRepository) GetByIDWithPermissions(ctx context.Context, id string) (*domainUser.User, error) {
	var user domainUser.User
	err := r.db.WithContext(ctx).
		Preload("Roles.Permissions").
		Where("id = ?", id).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgError.NotFoundError("user not found")
	}
	return &user, err
}

func (r *GormUserRepository) List(ctx context.Context) ([]*domainUser.User, error) {
	var users []*domainUser.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *GormUserRepository) Update(ctx context.Context, user *domainUser.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *GormUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&domainUser.User{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}

// SoftDelete marks the user deleted; gorm.DeletedAt keeps the row for audit.
func (r *GormUserRepository) SoftDelete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domainUser.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgError.NotFoundError("user not found")
	}
	return nil
}

func (r *GormUserRepository) AssignRole(ctx context.Context, userID, roleName string) error {
	var role domainUser.Role
	if err := r.db.WithContext(ctx).Where("name = ?", roleName).First(&role).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&domainUser.User{ID: userID}).
		Association("Roles").
		Append(&role)
}
