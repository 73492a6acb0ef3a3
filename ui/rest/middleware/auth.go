package middleware

import (
	"strings"

	domainUser "github.com/AzielCF/az-photofeed/domains/user"
	pkgError "github.com/AzielCF/az-photofeed/pkg/error"
	"github.com/AzielCF/az-photofeed/pkg/security"
	"github.com/AzielCF/az-photofeed/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// LocalsUserID is the fiber locals key carrying the authenticated user id.
const LocalsUserID = "userID"

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(401).JSON(utils.ResponseData{
		Status:  401,
		Code:    "UNAUTHORIZED",
		Message: message,
	})
}

// RequireAuth rejects requests without a valid bearer token and stores the
// token's user id in locals for downstream handlers.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return unauthorized(c, "missing bearer token")
		}

		claims, err := security.ValidateToken(token)
		if err != nil {
			logrus.WithError(err).Debug("[AUTH] token rejected")
			return unauthorized(c, "invalid or expired token")
		}

		c.Locals(LocalsUserID, claims.UserID)
		return c.Next()
	}
}

// OptionalAuth resolves the actor when a valid token is present and never
// blocks the request. An invalid or expired token downgrades to anonymous.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Next()
		}

		claims, err := security.ValidateToken(token)
		if err != nil {
			logrus.WithError(err).Debug("[AUTH] optional token rejected, continuing anonymous")
			return c.Next()
		}

		c.Locals(LocalsUserID, claims.UserID)
		return c.Next()
	}
}

// RequireAdmin loads the authenticated user's roles and rejects anyone
// without the administrator role. Must run after RequireAuth.
func RequireAdmin(userRepo domainUser.IUserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := ActorID(c)
		if userID == "" {
			return unauthorized(c, "missing bearer token")
		}

		user, err := userRepo.GetByID(c.UserContext(), userID)
		utils.PanicIfNeeded(err)

		if !user.HasRole(domainUser.RoleAdministrator) {
			forbidden := pkgError.ForbiddenError("administrator role required")
			return c.Status(forbidden.StatusCode()).JSON(utils.ResponseData{
				Status:  forbidden.StatusCode(),
				Code:    forbidden.ErrCode(),
				Message: forbidden.Error(),
			})
		}

		return c.Next()
	}
}

// ActorID returns the authenticated user id, or "" for anonymous requests.
func ActorID(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalsUserID).(string); ok {
		return id
	}
	return ""
}
