package handlerUtil

import (
	"ProjectEmojify/internal/api/emojify"
	"ProjectEmojify/pkg/log"
	"ProjectEmojify/pkg/response"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle converts any service error into the wire failure envelope. Errors
// carrying a *response.Error keep their status and application code; anything
// else surfaces as code 100. Every terminal error is logged at error severity
// with its resolved message.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"status":     respErr.Status,
			"path":       path,
			"operation":  operation,
		}).Error("Operation failed with error response")
		return c.Status(respErr.Status).JSON(emojify.ErrorResponse{
			StatusCode:   respErr.Status,
			ErrorCode:    respErr.Code,
			ErrorMessage: err.Error(),
		})
	}

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(emojify.ErrorResponse{
		StatusCode:   fiber.StatusInternalServerError,
		ErrorCode:    emojify.CodeUnspecified,
		ErrorMessage: err.Error(),
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(emojify.ErrorResponse{
		StatusCode:   fiber.StatusBadRequest,
		ErrorCode:    emojify.CodeUnspecified,
		ErrorMessage: "Validation failed: " + err.Error(),
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
