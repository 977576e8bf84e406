package handler

import (
	"go-pos-backend/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// fail maps any error to its HTTP shape. Unknown errors surface as a
// generic 500 so store internals never leak to clients.
func fail(c *fiber.Ctx, err error) error {
	appErr := apperror.From(err)
	return c.Status(appErr.Status).JSON(appErr)
}

// Helpers to pull user info from context (set by auth middleware)
func getUserID(c *fiber.Ctx) uuid.UUID {
	raw, ok := c.Locals("user_id").(string)
	if !ok {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
