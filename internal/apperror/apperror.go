// Package apperror defines the error kinds the API surfaces and maps them to
// HTTP status codes in one place, so handlers never hand-roll status logic.
package apperror

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

type Kind string

const (
	KindValidation        Kind = "ValidationError"
	KindUnauthorized      Kind = "UnauthorizedError"
	KindForbidden         Kind = "ForbiddenError"
	KindNotFound          Kind = "NotFoundError"
	KindAlreadyClockedIn  Kind = "AlreadyClockedIn"
	KindNotClockedIn      Kind = "NotClockedIn"
	KindAlreadyClockedOut Kind = "AlreadyClockedOut"
	KindStorage           Kind = "StorageError"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Storage wraps a persistence failure. These are logged and surfaced as 500;
// they are never retried automatically since attendance writes must not
// silently duplicate.
func Storage(err error, message string) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindAlreadyClockedIn, KindNotClockedIn, KindAlreadyClockedOut:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond writes the error as the JSON body the clients expect:
// { "error": <kind>, "message": <human text> }.
func Respond(c *fiber.Ctx, err error) error {
	var appErr *Error
	if errors.As(err, &appErr) {
		if appErr.Kind == KindStorage {
			log.Printf("storage error: %v", appErr.Err)
		}
		return c.Status(appErr.StatusCode()).JSON(fiber.Map{
			"error":   string(appErr.Kind),
			"message": appErr.Message,
		})
	}

	log.Printf("unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   string(KindStorage),
		"message": "Internal server error",
	})
}
