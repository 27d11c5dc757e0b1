package main

import "errors"

var (
	ErrMissingService       = errors.New("service identifier must not be empty")
	ErrMissingSeed          = errors.New("seed password must not be empty")
	ErrLoadConfig           = errors.New("failed to load configuration")
	ErrInvalidSpecialChars  = errors.New("invalid --special-chars value: must be true or false")
	ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")
)
