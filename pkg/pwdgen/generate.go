package pwdgen

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultLength is the password length used when none is requested.
	DefaultLength = 20

	// MaxLength64 and MaxLength71 are advisory upper bounds for requested
	// lengths. The encoded digest is shorter than both, so any request at or
	// below them may still yield fewer characters.
	MaxLength64 = 86
	MaxLength71 = 84
)

// MaxLength returns the advisory maximum length for the given mode.
func MaxLength(useSpecialChars bool) int {
	if useSpecialChars {
		return MaxLength71
	}
	return MaxLength64
}

// CreatePassword deterministically derives a password for service from seed.
//
// The result is the first min(length, n) characters of the encoded digest,
// where n is the natural length of the encoding. It is never padded, so a
// length larger than n silently yields n characters.
func CreatePassword(seed, service string, length int, useSpecialChars bool) (string, error) {
	if length < 0 {
		return "", errors.Join(ErrInvalidLength, fmt.Errorf("got %d", length))
	}

	d, err := Hash(seed, service)
	if err != nil {
		return "", err
	}

	return truncate(Encode(d, useSpecialChars), length), nil
}

// Option configures Generate.
type Option func(*options)

type options struct {
	length       int
	specialChars bool
	normalize    bool
	form         norm.Form
}

// WithLength sets the requested password length.
func WithLength(n int) Option {
	return func(o *options) { o.length = n }
}

// WithSpecialChars selects the 71-symbol alphabet when on, base64 otherwise.
func WithSpecialChars(on bool) Option {
	return func(o *options) { o.specialChars = on }
}

// WithNormalization applies the Unicode normalization form f to seed and
// service before hashing, so canonically equivalent spellings produce the
// same password. Passwords derived with and without normalization differ
// whenever the input is not already in form f.
func WithNormalization(f norm.Form) Option {
	return func(o *options) {
		o.normalize = true
		o.form = f
	}
}

// Generate is CreatePassword with functional options. Without options it
// produces a DefaultLength password using the 71-symbol alphabet.
func Generate(seed, service string, opts ...Option) (string, error) {
	o := options{
		length:       DefaultLength,
		specialChars: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.normalize {
		// norm passes invalid UTF-8 through, check before it can be rewritten
		if err := validateText(seed, service); err != nil {
			return "", err
		}
		seed = o.form.String(seed)
		service = o.form.String(service)
	}

	return CreatePassword(seed, service, o.length, o.specialChars)
}

// truncate relies on both alphabets being single-byte ASCII.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
