package errmsg

// StatusError carries an HTTP status code alongside the message surfaced to
// the caller. An empty message means the response body stays empty.
type StatusError struct {
	StatusCode int
	Message    string
}

func NewStatusError(statusCode int, message string) StatusError {
	return StatusError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func (se StatusError) Error() string {
	return se.Message
}
