package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Service records the public service identifier under the key "service".
func Service(id string) slog.Attr {
	return slog.String("service", id)
}

// Length records the length of a derived password under the key "length".
func Length(n int) slog.Attr {
	return slog.Int("length", n)
}

// RequestedLength records the length asked for under the key
// "requested_length".
func RequestedLength(n int) slog.Attr {
	return slog.Int("requested_length", n)
}

// Mode records the alphabet in use under the key "alphabet": "base71" when
// special characters are enabled, "base64" otherwise.
func Mode(specialChars bool) slog.Attr {
	if specialChars {
		return slog.String("alphabet", "base71")
	}
	return slog.String("alphabet", "base64")
}

// Sink records the output sink name under the key "sink".
func Sink(name string) slog.Attr {
	return slog.String("sink", name)
}
