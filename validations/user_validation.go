package validations

import (
	"context"

	domainUser "github.com/AzielCF/az-photofeed/domains/user"
	pkgError "github.com/AzielCF/az-photofeed/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateUpdateUser(ctx context.Context, request domainUser.UpdateUserRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Name, validation.Required),
		validation.Field(&request.Lastname, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
