package errors

type Code string

const (
	CodeUnknown       Code = "UNKNOWN"
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeBadRequest    Code = "BAD_REQUEST"
	CodeNotFound      Code = "NOT_FOUND"
	CodeConflict      Code = "CONFLICT"
	CodeUnavailable   Code = "UNAVAILABLE"
	CodeInternal      Code = "INTERNAL"
)

// Retryable reports whether the whole calling operation may be retried.
func (c Code) Retryable() bool {
	return c == CodeUnavailable
}
