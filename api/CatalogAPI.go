package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/dao"
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/httpresponse"
	"github.com/manuelandreaskuhn/bsi-interfacedesign-tr03151/service"
)

type CatalogAPI struct {
	Router         fiber.Router
	InstanceDAO    *dao.InstanceDAO
	CatalogService *service.CatalogService
}

func (api *CatalogAPI) Register() {
	// Functions
	api.Router.Get(
		"/:instance/functions", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			return httpresponse.ApplySuccessToResponse(c, api.CatalogService.LoadFunctions(basePath))
		},
	)
	api.Router.Get(
		"/:instance/functions/grouped", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			return httpresponse.ApplySuccessToResponse(c, api.CatalogService.GroupFunctionsByCategory(basePath))
		},
	)
	api.Router.Get(
		"/:instance/functions/:id", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			detail := api.CatalogService.GetFunctionDetail(basePath, c.Params("id"))
			if detail == nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Function not found")
			}
			return httpresponse.ApplySuccessToResponse(c, detail)
		},
	)

	// Enumerations
	api.Router.Get(
		"/:instance/enums", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			return httpresponse.ApplySuccessToResponse(c, api.CatalogService.LoadEnums(basePath))
		},
	)
	api.Router.Get(
		"/:instance/enums/grouped", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			return httpresponse.ApplySuccessToResponse(c, api.CatalogService.GroupEnumsByCategory(basePath))
		},
	)
	api.Router.Get(
		"/:instance/enums/:id", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			detail := api.CatalogService.GetEnumDetail(basePath, c.Params("id"))
			if detail == nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Enumeration not found")
			}
			return httpresponse.ApplySuccessToResponse(c, detail)
		},
	)

	// Types
	api.Router.Get(
		"/:instance/types", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			return httpresponse.ApplySuccessToResponse(c, api.CatalogService.LoadTypes(basePath))
		},
	)
	api.Router.Get(
		"/:instance/types/grouped", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			return httpresponse.ApplySuccessToResponse(c, api.CatalogService.GroupTypesByCategory(basePath))
		},
	)
	api.Router.Get(
		"/:instance/types/:id", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			detail := api.CatalogService.GetTypeDetail(basePath, c.Params("id"))
			if detail == nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Type not found")
			}
			return httpresponse.ApplySuccessToResponse(c, detail)
		},
	)

	// Exceptions
	api.Router.Get(
		"/:instance/exceptions", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			return httpresponse.ApplySuccessToResponse(c, api.CatalogService.LoadExceptions(basePath))
		},
	)
	api.Router.Get(
		"/:instance/exceptions/grouped", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			return httpresponse.ApplySuccessToResponse(c, api.CatalogService.GroupExceptionsByCategory(basePath))
		},
	)
	api.Router.Get(
		"/:instance/exceptions/by-severity", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			return httpresponse.ApplySuccessToResponse(c, api.CatalogService.GroupExceptionsBySeverity(basePath))
		},
	)
	api.Router.Get(
		"/:instance/exceptions/:id", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			detail := api.CatalogService.GetExceptionDetail(basePath, c.Params("id"))
			if detail == nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Exception not found")
			}
			return httpresponse.ApplySuccessToResponse(c, detail)
		},
	)

	// Overview
	api.Router.Get(
		"/:instance/overview", func(c *fiber.Ctx) error {
			basePath, err := api.InstanceDAO.Resolve(c.Params("instance"))
			if err != nil {
				return httpresponse.ApplyNotFoundToResponse(c, "Unknown instance")
			}
			return httpresponse.ApplySuccessToResponse(c, api.CatalogService.GetOverview(basePath))
		},
	)
}
