package response

import "github.com/gofiber/fiber/v3"

// Envelope is the wire format every endpoint answers with. Clients check
// Success before trusting any payload field, regardless of HTTP status.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Matches any    `json:"matches,omitempty"`
	Error   string `json:"error,omitempty"`
}

const (
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageNotFound            = "not found"
	MessageConflict            = "conflict"
	MessageUpstreamUnavailable = "service temporarily unavailable"
	MessageInternalServerError = "internal server error"
)

// Data answers a successful request whose payload lives under "data".
func Data(c fiber.Ctx, status int, data any) error {
	return c.Status(normalizeStatus(status)).JSON(Envelope{Success: true, Data: data})
}

// Matches answers the matching endpoints, whose payload lives under
// "matches" for client compatibility.
func Matches(c fiber.Ctx, status int, matches any) error {
	return c.Status(normalizeStatus(status)).JSON(Envelope{Success: true, Matches: matches})
}

// OK answers a successful request with no payload.
func OK(c fiber.Ctx, status int) error {
	return c.Status(normalizeStatus(status)).JSON(Envelope{Success: true})
}

func Error(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	if message == "" {
		message = DefaultMessageForStatus(st)
	}
	return c.Status(st).JSON(Envelope{Success: false, Error: message})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	case fiber.StatusServiceUnavailable:
		return MessageUpstreamUnavailable
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageBadRequest
	}
}
