package validation

import "errors"

var (
	ErrEmptyURL            = errors.New("original_url is required")
	ErrInvalidURLFormat    = errors.New("invalid url format")
	ErrUnsafeProtocol      = errors.New("url protocol not allowed")
	ErrURLTooLong          = errors.New("url exceeds maximum length")
	ErrPrivateIPNotAllowed = errors.New("private ip addresses not allowed")
	ErrInvalidExpiry       = errors.New("expiry must be a positive number of seconds")
)

// IsValidationError reports whether err came from this package.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrEmptyURL, ErrInvalidURLFormat, ErrUnsafeProtocol,
		ErrURLTooLong, ErrPrivateIPNotAllowed, ErrInvalidExpiry,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
