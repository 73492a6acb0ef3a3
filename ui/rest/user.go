package rest

import (
	domainUser "github.com/AzielCF/az-photofeed/domains/user"
	"github.com/AzielCF/az-photofeed/pkg/utils"
	"github.com/AzielCF/az-photofeed/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
)

type User struct {
	Service domainUser.IUserUsecase
}

// InitRestUser registers the user management routes. All of them are
// admin-gated, so the repository is needed here for the role check.
func InitRestUser(app fiber.Router, service domainUser.IUserUsecase, userRepo domainUser.IUserRepository) User {
	rest := User{Service: service}
	admin := app.Group("/users", middleware.RequireAuth(), middleware.RequireAdmin(userRepo))
	admin.Get("/", rest.List)
	admin.Get("/:id", rest.GetByID)
	admin.Put("/:id", rest.Update)
	admin.Delete("/:id", rest.Delete)
	return rest
}

func (controller *User) List(c *fiber.Ctx) error {
	users, err := controller.Service.List(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch users",
		Results: users,
	})
}

func (controller *User) GetByID(c *fiber.Ctx) error {
	user, err := controller.Service.GetByID(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch user",
		Results: user,
	})
}

func (controller *User) Update(c *fiber.Ctx) error {
	var request domainUser.UpdateUserRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	user, err := controller.Service.Update(c.UserContext(), c.Params("id"), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success update user",
		Results: user,
	})
}

func (controller *User) Delete(c *fiber.Ctx) error {
	err := controller.Service.Delete(c.UserContext(), c.Params("id"))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success delete user",
	})
}
