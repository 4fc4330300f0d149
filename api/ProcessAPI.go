package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/dao"
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/httpresponse"
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/service"
)

type ProcessAPI struct {
	Router         fiber.Router
	InstanceDAO    *dao.InstanceDAO
	ProcessService *service.ProcessService
}

func (api *ProcessAPI) Register() {
	api.Router.Get(
		"/:instance/processes", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			return httpresponse.ApplySuccessToResponse(c, api.ProcessService.LoadProcesses(basePath))
		},
	)

	// Process identity is composite: (actor, diagramType, id)
	api.Router.Get(
		"/:instance/processes/:actor/:diagramType/:id", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			detail := api.ProcessService.GetProcessDetail(
				basePath,
				c.Params("actor"),
				c.Params("diagramType"),
				c.Params("id"),
			)
			if detail == nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Process not found")
			}
			return httpresponse.ApplySuccessToResponse(c, detail)
		},
	)

	api.Router.Get(
		"/:instance/process-chains", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			return httpresponse.ApplySuccessToResponse(c, api.ProcessService.LoadProcessChains(basePath))
		},
	)

	api.Router.Get(
		"/:instance/process-chains/:folder/:id", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			detail := api.ProcessService.GetProcessChainDetail(
				basePath,
				c.Params("folder"),
				c.Params("id"),
			)
			if detail == nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Process chain not found")
			}
			return httpresponse.ApplySuccessToResponse(c, detail)
		},
	)
}
