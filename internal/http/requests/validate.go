package requests

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gookit/validate"
)

// Validate parses the request body into T and checks its validate tags.
func Validate[T any](ctx *fiber.Ctx) (T, error) {
	var request T
	if err := ctx.BodyParser(&request); err != nil {
		return request, fmt.Errorf("parse body: %w", err)
	}
	v := validate.Struct(request)
	if !v.Validate() {
		return request, v.Errors
	}
	return request, nil
}
