package rest

import (
	domainFeed "github.com/AzielCF/az-photofeed/domains/feed"
	"github.com/AzielCF/az-photofeed/pkg/utils"
	"github.com/AzielCF/az-photofeed/ui/rest/middleware"
	"github.com/AzielCF/az-photofeed/validations"
	"github.com/gofiber/fiber/v2"
)

type Feed struct {
	Service domainFeed.IFeedUsecase
}

func InitRestFeed(app fiber.Router, service domainFeed.IFeedUsecase) Feed {
	rest := Feed{Service: service}
	app.Get("/photos", middleware.OptionalAuth(), rest.Search)
	app.Get("/photos/:id", middleware.OptionalAuth(), rest.Detail)
	return rest
}

func (controller *Feed) Search(c *fiber.Ctx) error {
	query := domainFeed.Query{
		SearchText: c.Query("search"),
		Tags:       c.Query("tags"),
		Sort:       c.Query("sort"),
		PerPage:    c.QueryInt("per_page"),
		Page:       c.QueryInt("page"),
	}

	err := validations.ValidateFeedQuery(c.UserContext(), query)
	utils.PanicIfNeeded(err)

	page, err := controller.Service.FetchFeed(c.UserContext(), query, middleware.ActorID(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch photo feed",
		Results: page,
	})
}

func (controller *Feed) Detail(c *fiber.Ctx) error {
	photoID := c.Params("id")
	if photoID == "" {
		return c.Status(400).JSON(utils.ResponseData{
			Status:  400,
			Code:    "BAD_REQUEST",
			Message: "photo id is required",
		})
	}

	detail, err := controller.Service.FetchPhoto(c.UserContext(), photoID, middleware.ActorID(c))
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Success fetch photo detail",
		Results: detail,
	})
}
