package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

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

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Key records a cache key under the key "cache_key".
func Key(key string) slog.Attr {
	return slog.String("cache_key", key)
}

// Capacity records a cache capacity under the key "capacity".
func Capacity(n int) slog.Attr {
	return slog.Int("capacity", n)
}

// Evicted records how many entries were evicted under the key "evicted".
func Evicted(n int) slog.Attr {
	return slog.Int("evicted", n)
}
