package usecase

import (
	"context"
	"errors"

	domainAuth "github.com/AzielCF/az-photofeed/domains/auth"
	domainUser "github.com/AzielCF/az-photofeed/domains/user"
	pkgError "github.com/AzielCF/az-photofeed/pkg/error"
	"github.com/AzielCF/az-photofeed/pkg/security"
	"github.com/AzielCF/az-photofeed/validations"
	"github.com/sirupsen/logrus"
)

type authService struct {
	userRepo domainUser.IUserRepository
}

func NewAuthService(userRepo domainUser.IUserRepository) domainAuth.IAuthUsecase {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(ctx context.Context, request domainAuth.RegisterRequest) (*domainUser.User, error) {
	if err := validations.ValidateRegister(ctx, request); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		var notFound pkgError.NotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	if existing != nil {
		return nil, pkgError.ValidationError("email: already registered.")
	}

	hash, err := security.HashPassword(request.Password)
	if err != nil {
		logrus.WithError(err).Error("[AUTH] failed to hash password")
		return nil, pkgError.InternalServerError("could not register user")
	}

	user := domainUser.NewUser(request.Email, hash, request.Name, request.Lastname, request.Birthdate)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// New accounts always start as subscribers. Promotion is a manual step.
	if err := s.userRepo.AssignRole(ctx, user.ID, domainUser.RoleSubscriber); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("[AUTH] failed to assign default role")
	}

	return s.userRepo.GetByID(ctx, user.ID)
}

func (s *authService) Login(ctx context.Context, request domainAuth.LoginRequest) (domainAuth.LoginResponse, error) {
	if err := validations.ValidateLogin(ctx, request); err != nil {
		return domainAuth.LoginResponse{}, err
	}

	user, err := s.userRepo.GetByEmail(ctx, request.Email)
	if err != nil {
		var notFound pkgError.NotFoundError
		if errors.As(err, &notFound) {
			return domainAuth.LoginResponse{}, pkgError.UnauthorizedError("invalid credentials")
		}
		return domainAuth.LoginResponse{}, err
	}

	if !security.CheckPasswordHash(request.Password, user.PasswordHash) {
		return domainAuth.LoginResponse{}, pkgError.UnauthorizedError("invalid credentials")
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		logrus.WithError(err).Error("[AUTH] failed to sign token")
		return domainAuth.LoginResponse{}, pkgError.InternalServerError("could not complete login")
	}

	return domainAuth.LoginResponse{User: user, Token: token}, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*domainUser.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *authService) Can(ctx context.Context, userID, permissionName string) (domainAuth.PermissionCheck, error) {
	user, err := s.userRepo.GetByIDWithPermissions(ctx, userID)
	if err != nil {
		return domainAuth.PermissionCheck{}, err
	}

	return domainAuth.PermissionCheck{
		PermissionName: permissionName,
		HasPermission:  user.HasPermission(permissionName),
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, request domainAuth.ChangePasswordRequest) error {
	if err := validations.ValidateChangePassword(ctx, request); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !security.CheckPasswordHash(request.OldPassword, user.PasswordHash) {
		return pkgError.UnauthorizedError("old password does not match")
	}

	hash, err := security.HashPassword(request.NewPassword)
	if err != nil {
		logrus.WithError(err).Error("[AUTH] failed to hash password")
		return pkgError.InternalServerError("could not change password")
	}

	return s.userRepo.UpdatePassword(ctx, userID, hash)
}
