package pwdgen

import "errors"

var (
	// ErrAlgorithmUnavailable is returned when the hash primitive is not
	// linked into the binary.
	ErrAlgorithmUnavailable = errors.New("hash algorithm unavailable")

	// ErrEncoding is returned when an input string is not valid UTF-8 text.
	ErrEncoding = errors.New("input is not valid UTF-8")

	// ErrInvalidLength is returned for a negative password length.
	ErrInvalidLength = errors.New("invalid password length: must not be negative")
)
