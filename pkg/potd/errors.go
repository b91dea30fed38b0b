package potd

import "errors"

// Strategy failure taxonomy. Any of these abandons the current strategy in
// favor of the next one in the cascade.
var (
	// ErrNetwork covers non-success status codes, timeouts and connection failures.
	ErrNetwork = errors.New("network failure")

	// ErrParse covers structured responses missing expected fields.
	ErrParse = errors.New("unexpected response shape")

	// ErrEmptyResult means the strategy ran but located no image or caption.
	ErrEmptyResult = errors.New("no image or caption found")
)
