package errors

import "fmt"

var (
	ErrEventNotFound        = fmt.Errorf("event not found")
	ErrPostNotFound         = fmt.Errorf("post not found")
	ErrChatNotFound         = fmt.Errorf("chat not found")
	ErrNotificationNotFound = fmt.Errorf("notification not found")
	ErrApplicantNotFound    = fmt.Errorf("applicant not found")
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrImageNotFound        = fmt.Errorf("image not found")
	ErrThreadNotFound       = fmt.Errorf("consultation thread not found")

	ErrEmptyContent     = fmt.Errorf("content is empty")
	ErrPhoneNotVerified = fmt.Errorf("phone number must be bound first")
	ErrInvalidPhone     = fmt.Errorf("invalid phone number")
	ErrForbidden        = fmt.Errorf("operation not allowed for this role")
	ErrThreadExists     = fmt.Errorf("a consultation thread already exists for this user")
	ErrAlreadyApplied   = fmt.Errorf("user already applied to this event")
	ErrEventFull        = fmt.Errorf("event is full")
	ErrApplicantSettled = fmt.Errorf("applicant already approved or rejected")
	ErrUnsupportedImage = fmt.Errorf("unsupported image type")
	ErrUnknownSchema    = fmt.Errorf("unknown user record schema version")
	ErrUnknownCommand   = fmt.Errorf("unknown command")
	ErrInvalidToken     = fmt.Errorf("invalid session token")
	ErrTokenGeneration  = fmt.Errorf("token generation failed")
	ErrInvalidCharacter = fmt.Errorf("replacement must be a single character")
	ErrInvalidPayload   = fmt.Errorf("invalid payload")
	ErrEmptyWords       = fmt.Errorf("no words have been found")
	ErrInvalidLimit     = fmt.Errorf("comment limit must be at least 1")
	ErrInvalidPhoneHash = fmt.Errorf("invalid phone hash format")
)
