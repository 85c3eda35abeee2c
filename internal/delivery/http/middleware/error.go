package middleware

import (
	"errors"
	"log"

	"talenthub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError is the one error type handlers return. Data carries itemized
// detail merged into the error body (e.g. {"fields": [...]}); Cause stays
// server-side and is never serialized.
type AppError struct {
	StatusCode int
	Message    string
	Data       response.Body
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data response.Body, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered | path=%s panic=%v", c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := m.normalize(c, err)
		return response.Error(c, status, msg, data)
	}
}

func (m *ErrorMiddleware) normalize(c fiber.Ctx, err error) (int, string, response.Body) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			m.logger.Printf("request failed | path=%s error=%v", c.Path(), appErr)
			return fiber.StatusInternalServerError, internalMessage(appErr.Message), nil
		}
		return status, appErr.Message, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			m.logger.Printf("request failed | path=%s error=%v", c.Path(), fiberErr)
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		return status, fiberErr.Message, nil
	}

	m.logger.Printf("request failed | path=%s error=%v", c.Path(), err)
	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}

// internalMessage keeps the handler's phrasing for 5xx ("Error creating job")
// but never the cause behind it.
func internalMessage(msg string) string {
	if msg == "" {
		return response.MessageInternalServerError
	}
	return msg
}
