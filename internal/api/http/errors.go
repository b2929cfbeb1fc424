package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

// Machine-checkable error kinds carried in the failure envelope.
const (
	KindNotAuthenticated = "not_authenticated"
	KindValidation       = "validation"
	KindNotFound         = "not_found"
	KindDuplicate        = "duplicate"
	KindUpstream         = "upstream_unavailable"
	KindPersistence      = "persistence"
)

// Error is an HTTP failure with a machine-checkable kind. Handlers return it;
// ErrorHandler renders it.
type Error struct {
	Status  int    `json:"-"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func newError(status int, kind, message string) *Error {
	return &Error{Status: status, Kind: kind, Message: message}
}

// ErrorHandler is the centralized fiber error handler. Every failure is
// rendered as {"error":true,"kind":...,"message":...}; errors without a kind
// become a generic persistence failure with no internal detail.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	kind := KindPersistence
	message := "internal error"

	switch e := err.(type) {
	case *Error:
		status = e.Status
		kind = e.Kind
		message = e.Message
	case *fiber.Error:
		status = e.Code
		message = e.Message
		switch e.Code {
		case fiber.StatusBadRequest:
			kind = KindValidation
		case fiber.StatusNotFound:
			kind = KindNotFound
		case fiber.StatusUnauthorized:
			kind = KindNotAuthenticated
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"error":   true,
		"kind":    kind,
		"message": message,
	})
}
