package models

// Result is a tagged success-or-failure value. The gateway decodes every
// platform envelope into one of these exactly once, so downstream code never
// compares raw status literals.
type Result[T any] struct {
	ok      bool
	value   T
	message string
}

// Ok builds a successful result. message carries the platform's optional
// success text and may be empty.
func Ok[T any](value T, message string) Result[T] {
	return Result[T]{ok: true, value: value, message: message}
}

// Err builds a failed result carrying the platform's error text verbatim.
func Err[T any](message string) Result[T] {
	return Result[T]{message: message}
}

// Ok reports whether the result is a success.
func (r Result[T]) Ok() bool { return r.ok }

// Value returns the decoded payload. It is the zero value on failure.
func (r Result[T]) Value() T { return r.value }

// Message returns the success or failure text that came with the response.
func (r Result[T]) Message() string { return r.message }

// Empty is the payload type for operations whose success carries no data.
type Empty struct{}
