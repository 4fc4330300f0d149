package httpresponse

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// ApplySuccessToResponse writes the standard success envelope
func ApplySuccessToResponse(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// ApplyNotFoundToResponse writes a 404 envelope for a missing entity
func ApplyNotFoundToResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// ApplyErrorToResponse writes a 500 envelope. The underlying error is
// logged under a generated reference id that is returned to the client
// instead of the error text.
func ApplyErrorToResponse(c *fiber.Ctx, message string, err error) error {
	errorId := uuid.New().String()
	log.Error(fmt.Sprintf("Request failed [%v]: %v: %v", errorId, message, err))

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   message,
		"errorId": errorId,
	})
}
