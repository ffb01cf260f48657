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

// Component records the subsystem emitting the record under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Strategy records a name-generation strategy tag under the key "strategy".
func Strategy(tag string) slog.Attr {
	return slog.String("strategy", tag)
}

// Domain records a probed domain under the key "domain".
func Domain(domain string) slog.Attr {
	return slog.String("domain", domain)
}
