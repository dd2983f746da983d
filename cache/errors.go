package cache

import "errors"

var (
	// ErrStoreUnreachable the store did not answer the initial ping.
	ErrStoreUnreachable = errors.New("store unreachable")
	// ErrBadFormat stored bytes cannot be decoded as the requested type.
	ErrBadFormat = errors.New("bad value format")
	// ErrUnsupportedType value is not text, bytes, an integer or a float.
	ErrUnsupportedType = errors.New("unsupported value type")
)
