package basex

import "errors"

var (
	// Alphabet validation errors
	ErrAlphabetTooShort = errors.New("alphabet must contain at least 2 symbols")
	ErrAlphabetTooLong  = errors.New("alphabet must contain at most 256 symbols")
	ErrDuplicateSymbol  = errors.New("alphabet contains a duplicate symbol")
	ErrNonASCIISymbol   = errors.New("alphabet symbols must be printable ASCII")

	// Decoding errors
	ErrInvalidCharacter = errors.New("character is not part of the alphabet")
)
