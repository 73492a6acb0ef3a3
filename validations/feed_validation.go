package validations

import (
	"context"

	domainFeed "github.com/AzielCF/az-photofeed/domains/feed"
	pkgError "github.com/AzielCF/az-photofeed/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var allowedSorts = []interface{}{
	"relevance",
	"interestingness-desc",
	"interestingness-asc",
	"date-posted-desc",
	"date-posted-asc",
	"date-taken-desc",
	"date-taken-asc",
}

func ValidateFeedQuery(ctx context.Context, query domainFeed.Query) error {
	err := validation.ValidateStructWithContext(ctx, &query,
		validation.Field(&query.Sort, validation.In(allowedSorts...)),
		validation.Field(&query.PerPage, validation.Min(0), validation.Max(500)),
		validation.Field(&query.Page, validation.Min(0)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
