package auth

import (
	"context"
	"time"

	domainUser "github.com/AzielCF/az-photofeed/domains/user"
)

type RegisterRequest struct {
	Email     string     `json:"email"`
	Password  string     `json:"password"`
	Name      string     `json:"name"`
	Lastname  string     `json:"lastname"`
	Birthdate *time.Time `json:"birthdate,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *domainUser.User `json:"user"`
	Token string           `json:"token"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// PermissionCheck is the result of a Can lookup.
type PermissionCheck struct {
	PermissionName string `json:"permission_name"`
	HasPermission  bool   `json:"has_permission"`
}

// IAuthUsecase defines the business logic for authentication.
type IAuthUsecase interface {
	Register(ctx context.Context, request RegisterRequest) (*domainUser.User, error)
	Login(ctx context.Context, request LoginRequest) (LoginResponse, error)
	Me(ctx context.Context, userID string) (*domainUser.User, error)
	Can(ctx context.Context, userID, permissionName string) (PermissionCheck, error)
	ChangePassword(ctx context.Context, userID string, request ChangePasswordRequest) error
}
