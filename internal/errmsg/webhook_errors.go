package errmsg

import "net/http"

// Webhook dispatch StatusError values. Both deliberately carry no message:
// the size guard and internal failures answer with a bare status code, and
// the underlying cause only ever reaches the error log.
var (
	PayloadTooLarge = NewStatusError(http.StatusRequestEntityTooLarge, "")
	InternalError   = NewStatusError(http.StatusInternalServerError, "")
)
