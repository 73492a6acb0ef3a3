package rest

import (
	domainAuth "github.com/AzielCF/az-photofeed/domains/auth"
	"github.com/AzielCF/az-photofeed/pkg/utils"
	"github.com/AzielCF/az-photofeed/ui/rest/middleware"
	"github.com/gofiber/fiber/v2"
)

type Auth struct {
	Service domainAuth.IAuthUsecase
}

func InitRestAuth(app fiber.Router, service domainAuth.IAuthUsecase) Auth {
	rest := Auth{Service: service}
	app.Post("/auth/register", rest.Register)
	app.Post("/auth/login", rest.Login)
	app.Get("/auth/me", middleware.RequireAuth(), rest.Me)
	app.Get("/auth/can/:permission", middleware.RequireAuth(), rest.Can)
	app.Put("/auth/password", middleware.RequireAuth(), rest.ChangePassword)
	return rest
}

func (controller *Auth) Register(c *fiber.Ctx) error {
	var request domainAuth.RegisterRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	user, err := controller.Service.Register(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.Status(201).JSON(utils.ResponseData{
		Status:  201,
		Code:    "CREATED",
		Message: "Success register user",
		Results: user,
	})
}

func (controller *Auth) Login(c *fiber.Ctx) error {
	var request domainAuth.LoginRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	response, err := controller.Service.Login(c.UserContext(), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success login",
		Results: response,
	})
}

func (controller *Auth) Me(c *fiber.Ctx) error {
	user, err := controller.Service.Me(c.UserContext(), middleware.ActorID(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch profile",
		Results: user,
	})
}

func (controller *Auth) Can(c *fiber.Ctx) error {
	permission := c.Params("permission")
	if permission == "" {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: "permission is required",
		})
	}

	check, err := controller.Service.Can(c.UserContext(), middleware.ActorID(c), permission)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success check permission",
		Results: check,
	})
}

func (controller *Auth) ChangePassword(c *fiber.Ctx) error {
	var request domainAuth.ChangePasswordRequest
	err := c.BodyParser(&request)
	utils.PanicIfNeeded(err)

	err = controller.Service.ChangePassword(c.UserContext(), middleware.ActorID(c), request)
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success change password",
	})
}
