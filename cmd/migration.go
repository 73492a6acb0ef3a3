package cmd

import (
	"errors"

	domainUser "github.com/AzielCF/az-photofeed/domains/user"
	"github.com/AzielCF/az-photofeed/pkg/security"
	"github.com/AzielCF/az-photofeed/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrationCmd = &cobra.Command{
	Use:   "migration",
	Short: "Run database migrations and seed the default role graph",
	Run:   runMigration,
}

func init() {
	rootCmd.AddCommand(migrationCmd)
}

// Permissions granted to the administrator role.
var adminPermissions = []string{
	"can_create_user",
	"can_update_user",
	"can_delete_user",
}

func runMigration(_ *cobra.Command, _ []string) {
	if err := repository.NewGormUserRepository(db).AutoMigrate(); err != nil {
		logrus.Fatalf("[MIGRATION] user tables migration failed: %v", err)
	}
	if err := repository.NewGormHistoryRepository(db).AutoMigrate(); err != nil {
		logrus.Fatalf("[MIGRATION] history table migration failed: %v", err)
	}

	if err := seedRoles(db); err != nil {
		logrus.Fatalf("[MIGRATION] seeding roles failed: %v", err)
	}
	if err := seedAdminUser(db); err != nil {
		logrus.Fatalf("[MIGRATION] seeding admin user failed: %v", err)
	}

	logrus.Info("[MIGRATION] database is up to date")
}

func seedRoles(db *gorm.DB) error {
	var permissions []domainUser.Permission
	for _, name := range adminPermissions {
		permission, err := findOrCreatePermission(db, name)
		if err != nil {
			return err
		}
		permissions = append(permissions, permission)
	}

	admin, err := findOrCreateRole(db, domainUser.RoleAdministrator)
	if err != nil {
		return err
	}
	if err := db.Model(&admin).Association("Permissions").Replace(permissions); err != nil {
		return err
	}

	_, err = findOrCreateRole(db, domainUser.RoleSubscriber)
	return err
}

func findOrCreateRole(db *gorm.DB, name string) (domainUser.Role, error) {
	var role domainUser.Role
	err := db.Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		role = domainUser.Role{ID: uuid.New().String(), Name: name}
		err = db.Create(&role).Error
	}
	return role, err
}

func findOrCreatePermission(db *gorm.DB, name string) (domainUser.Permission, error) {
	var permission domainUser.Permission
	err := db.Where("name = ?", name).First(&permission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		permission = domainUser.Permission{ID: uuid.New().String(), Name: name}
		err = db.Create(&permission).Error
	}
	return permission, err
}

// seedAdminUser creates the demo administrator account on first run. The
// password must be rotated before any real deployment.
func seedAdminUser(db *gorm.DB) error {
	const adminEmail = "admin@admin.com"

	var count int64
	if err := db.Model(&domainUser.User{}).Where("email = ?", adminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := security.HashPassword("admin")
	if err != nil {
		return err
	}

	admin := domainUser.NewUser(adminEmail, hash, "Admin", "Admin", nil)
	if err := db.Create(admin).Error; err != nil {
		return err
	}

	var role domainUser.Role
	if err := db.Where("name = ?", domainUser.RoleAdministrator).First(&role).Error; err != nil {
		return err
	}
	if err := db.Model(admin).Association("Roles").Append(&role); err != nil {
		return err
	}

	logrus.Warnf("[MIGRATION] seeded demo administrator %s with default password", adminEmail)
	return nil
}
