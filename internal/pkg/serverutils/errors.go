package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ApiError is a user-visible structured error with a fixed HTTP status.
// Only invalid-query (400) and no-results (404) conditions surface this
// way; collaborator failures are absorbed inside the pipeline.
type ApiError struct {
	Code    int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewBadRequest(message string) *ApiError {
	return &ApiError{Code: fiber.StatusBadRequest, Message: message}
}

func NewNotFound(message string) *ApiError {
	return &ApiError{Code: fiber.StatusNotFound, Message: message}
}

// ErrorHandlerMiddleware maps errors escaping a handler onto the HTTP
// surface: ApiError keeps its status, validation errors become 400,
// anything else is a 500 with the message passed through.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var apiErr *ApiError
		if errors.As(err, &apiErr) {
			return ctx.Status(apiErr.Code).JSON(fiber.Map{
				"success": false,
				"message": apiErr.Message,
			})
		}

		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": validationErrs.Error(),
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
}
