package usecase

import (
	"context"

	domainUser "github.com/AzielCF/az-photofeed/domains/user"
	"github.com/AzielCF/az-photofeed/validations"
)

type userService struct {
	userRepo domainUser.IUserRepository
}

func NewUserService(userRepo domainUser.IUserRepository) domainUser.IUserUsecase {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(ctx context.Context) ([]*domainUser.User, error) {
	return s.userRepo.List(ctx)
}

func (s *userService) GetByID(ctx context.Context, id string) (*domainUser.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) Update(ctx context.Context, id string, request domainUser.UpdateUserRequest) (*domainUser.User, error) {
	if err := validations.ValidateUpdateUser(ctx, request); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = request.Name
	user.Lastname = request.Lastname
	if request.Birthdate != nil {
		user.Birthdate = request.Birthdate
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.userRepo.SoftDelete(ctx, id)
}
