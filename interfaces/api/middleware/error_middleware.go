package middleware

import (
	"github.com/gofiber/fiber/v2"

	"menu-catalog/pkg/logger"
	"menu-catalog/pkg/utils"
)

// ErrorHandler maps errors escaping handlers onto the JSON error envelope.
// Storage failures surface as 500 after GORM has rolled the transaction back.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusConflict:
				errCode = utils.ErrCodeConflict
			}
		}

		if code >= 500 {
			logger.ErrorContext(c.UserContext(), "Request failed", "error", err)
		} else {
			logger.WarnContext(c.UserContext(), "Request rejected", "error", err, "status", code)
		}

		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}
