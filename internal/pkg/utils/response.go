package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pizza-hunt-service/internal/pkg/errors"
)

// ErrorResponse - конверт ошибки публичного API.
// Фронтенд различает ответы только по полю success.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Success: false,
			Error:   appErr.Message,
			Code:    appErr.Code,
		})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Success: false,
		Error:   errors.ErrInternalServer.Message,
		Code:    errors.ErrInternalServer.Code,
	})
}
