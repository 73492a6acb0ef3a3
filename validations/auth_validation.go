package validations

import (
	"context"

	domainAuth "github.com/AzielCF/az-photofeed/domains/auth"
	pkgError "github.com/AzielCF/az-photofeed/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

func ValidateRegister(ctx context.Context, request domainAuth.RegisterRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Email, validation.Required, is.EmailFormat),
		validation.Field(&request.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&request.Name, validation.Required),
		validation.Field(&request.Lastname, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateLogin(ctx context.Context, request domainAuth.LoginRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Email, validation.Required, is.EmailFormat),
		validation.Field(&request.Password, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateChangePassword(ctx context.Context, request domainAuth.ChangePasswordRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.OldPassword, validation.Required),
		validation.Field(&request.NewPassword, validation.Required, validation.Length(8, 72)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
