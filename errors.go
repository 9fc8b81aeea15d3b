package articles

import (
	"strings"

	"github.com/goliatone/go-errors"
)

// ErrDuplicateEmail is returned when registering an email that already exists
var ErrDuplicateEmail = errors.New("The user with specified email address already exists", errors.CategoryConflict).
	WithCode(errors.CodeBadRequest).
	WithTextCode("DUPLICATE_EMAIL")

// ErrInvalidCredentials covers unknown users, wrong passwords, and tokens
// that fail to decode. The cases are indistinguishable on purpose.
var ErrInvalidCredentials = errors.New("Invalid credentials", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("INVALID_CREDENTIALS")

// ErrMismatchedHashAndPassword is the hasher level mismatch error
var ErrMismatchedHashAndPassword = errors.New("password does not match hash", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("PASSWORD_MISMATCH")

// ErrNoEmptyString rejects empty input to the password hasher
var ErrNoEmptyString = errors.New("value must not be an empty string", errors.CategoryValidation).
	WithCode(errors.CodeBadRequest).
	WithTextCode("EMPTY_VALUE")

// ErrMissingToken is returned when a protected operation has no token
var ErrMissingToken = errors.New("Invalid token", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("MISSING_TOKEN")

// ErrTokenExpired is returned when the token window has elapsed
var ErrTokenExpired = errors.New("Token expired", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("TOKEN_EXPIRED")

// ErrTokenMalformed covers structurally broken tokens
var ErrTokenMalformed = errors.New("Token is malformed", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("TOKEN_MALFORMED")

// ErrInvalidSignature is returned when the token signature does not verify
var ErrInvalidSignature = errors.New("Token signature is invalid", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("INVALID_SIGNATURE")

// ErrPermissionDenied is returned when the current user may not act on a resource
var ErrPermissionDenied = errors.New("You don't have permissions to edit this resource", errors.CategoryAuthz).
	WithCode(errors.CodeForbidden).
	WithTextCode("PERMISSION_DENIED")

// ErrNotFound is a resource lookup miss
var ErrNotFound = errors.New("Not found", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound).
	WithTextCode("NOT_FOUND")

// ErrUnableToMapClaims unable to get claims from the request context
var ErrUnableToMapClaims = errors.New("unable to map claims", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("UNMAPPABLE_CLAIMS")

// IsUniqueViolation reports whether err looks like a database unique
// constraint failure. Drivers disagree on error types, so we match on the
// message the way sqlite and postgres spell it.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
