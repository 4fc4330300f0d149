package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/dao"
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/httpresponse"
)

type InstanceAPI struct {
	Router      fiber.Router
	InstanceDAO *dao.InstanceDAO
}

func (api *InstanceAPI) Register() {
	api.Router.Get(
		"/instances", func(c *fiber.Ctx) error {
			instances, err := api.InstanceDAO.FindAll()
			if err != nil {
				return httpresponse.ApplyErrorToResponse(c, "Unexpected error", err)
			}
			return httpresponse.ApplySuccessToResponse(c, instances)
		},
	)
}
