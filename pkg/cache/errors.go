package cache

import "errors"

// Package-specific errors
var (
	// ErrInvalidKey is returned by Set when the key is empty or not valid UTF-8
	ErrInvalidKey = errors.New("invalid cache key")

	// ErrInvalidValue is returned by Set when the value is nil
	ErrInvalidValue = errors.New("invalid cache value")

	// ErrInvalidConfig is returned when a capacity is zero or negative
	ErrInvalidConfig = errors.New("invalid cache configuration")
)
