package errors

import (
	"errors"
	"net/http"
)

// HTTPStatus maps a sentinel error to the status code returned to clients.
// Unknown errors are internal.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case is(err, ErrEventNotFound, ErrPostNotFound, ErrChatNotFound, ErrNotificationNotFound,
		ErrApplicantNotFound, ErrUserNotFound, ErrImageNotFound, ErrThreadNotFound):
		return http.StatusNotFound
	case is(err, ErrEmptyContent, ErrInvalidPhone, ErrInvalidPayload, ErrUnsupportedImage, ErrUnknownCommand):
		return http.StatusBadRequest
	case is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case is(err, ErrForbidden, ErrPhoneNotVerified):
		return http.StatusForbidden
	case is(err, ErrThreadExists, ErrAlreadyApplied, ErrEventFull, ErrApplicantSettled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func is(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
