package response

import "github.com/gofiber/fiber/v3"

const (
	MessageBadRequest          = "Bad request"
	MessageUnauthorized        = "Unauthorized"
	MessageForbidden           = "Forbidden"
	MessageNotFound            = "Not found"
	MessageInternalServerError = "Internal server error"
)

// Body lists the extra top-level fields sent next to "message"
// (token, user, job, fields, ...).
type Body = fiber.Map

// Success writes {"message": msg, ...payload} with the given status.
func Success(c fiber.Ctx, status int, message string, payload Body) error {
	return write(c, status, message, payload)
}

// Error writes {"message": msg, ...extra} with the given status. Extra is
// used for itemized validation detail ("fields", "details").
func Error(c fiber.Ctx, status int, message string, extra Body) error {
	return write(c, status, message, extra)
}

// Raw writes the body as-is; collection reads return bare arrays.
func Raw(c fiber.Ctx, status int, body any) error {
	return c.Status(normalizeStatus(status)).JSON(body)
}

func write(c fiber.Ctx, status int, message string, payload Body) error {
	st := normalizeStatus(status)

	body := Body{"message": normalizeMessage(message, st)}
	for k, v := range payload {
		if k == "message" {
			continue
		}
		body[k] = v
	}
	return c.Status(st).JSON(body)
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return defaultMessageForStatus(status)
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		if status >= 400 {
			return MessageBadRequest
		}
		return "OK"
	}
}
