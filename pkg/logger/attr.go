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

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Kind records an identifier kind (rrn, frn, invalid) under the key "kind".
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// Masked records an already masked value under the key "masked".
func Masked(value string) slog.Attr {
	return slog.String("masked", value)
}
