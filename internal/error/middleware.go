package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/mbibank/ledger/internal/constants"
	"github.com/mbibank/ledger/internal/service"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"code":    constants.ErrCodeInternalError,
			"message": constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	status := constants.GetHTTPStatus(err.Code)

	message := constants.GetErrorMessage(err.Code)
	if err.Code == constants.ErrCodeBadRecord {
		// name the offending column for corrupted-store reports
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"code":    err.Code,
		"message": message,
	})
}
