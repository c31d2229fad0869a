package constants

import "net/http"

// CodedError is an error that knows which HTTP status it maps to.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound    = NewCodedError("not found in db", http.StatusNotFound)
	ErrNotFound      = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized  = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrBadRequest    = NewCodedError("bad request", http.StatusBadRequest)
	ErrSessionClosed = NewCodedError("session closed", http.StatusGone)

	// ErrCapacityExceeded is returned when a submission hits the candidate location cap.
	ErrCapacityExceeded = NewCodedError("candidate location limit reached", http.StatusConflict)

	ErrUnknownTemplate     = NewCodedError("unknown business template", http.StatusBadRequest)
	ErrUnknownCategory     = NewCodedError("unknown category", http.StatusBadRequest)
	ErrUnknownSubcategory  = NewCodedError("unknown subcategory", http.StatusBadRequest)
	ErrUnknownBusinessType = NewCodedError("unknown business type", http.StatusBadRequest)
	ErrInvalidSelection    = NewCodedError("invalid selection", http.StatusBadRequest)

	// ErrRemoteScoring marks any failed or malformed call to the analysis service.
	ErrRemoteScoring = NewCodedError("remote scoring failed", http.StatusBadGateway)
)
