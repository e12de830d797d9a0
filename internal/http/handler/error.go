package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"photoapp/internal/http/middleware"
	"photoapp/internal/service"
)

// errorPayload defines the standardized JSON error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking
// internal error detail to the client.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// serviceError translates a gallery service error into the JSON envelope
// used by the API endpoints. Internal failures log nothing here; the request
// logger middleware records the status.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyFile):
		return writeError(c, fiber.StatusBadRequest, "EMPTY_FILE", "uploaded file is empty")
	case errors.Is(err, service.ErrUnsupportedType):
		return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_TYPE", "only image files are accepted")
	case errors.Is(err, service.ErrTooLarge):
		return writeError(c, fiber.StatusBadRequest, "FILE_TOO_LARGE", "file exceeds the maximum allowed size")
	case errors.Is(err, service.ErrUnsafeName):
		return writeError(c, fiber.StatusBadRequest, "UNSAFE_FILENAME", "filename is missing or unsafe")
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNoInlineData):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "photo not found")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// userMessage maps a gallery service error to the message shown in the
// HTML flash. Validation errors echo what the user can fix; storage and
// unexpected failures stay generic.
func userMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrEmptyFile):
		return "Please select a file to upload"
	case errors.Is(err, service.ErrUnsupportedType):
		return "Please upload a valid image file (JPEG, PNG, GIF, etc.)"
	case errors.Is(err, service.ErrTooLarge):
		return "File is too large"
	case errors.Is(err, service.ErrUnsafeName):
		return "File name is not allowed"
	case errors.Is(err, service.ErrNotFound):
		return "Image not found"
	default:
		return "An unexpected error occurred, please try again"
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error
// responses for anything handlers did not translate themselves.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "FILE_TOO_LARGE", "request body exceeds the allowed size")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
