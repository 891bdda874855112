package hibp

import (
	"errors"
	"fmt"
)

var (
	ErrMissingDelimiter = errors.New("missing ':' delimiter")
	ErrEmptySuffix      = errors.New("empty hash suffix")
	ErrInvalidCount     = errors.New("invalid occurrence count")
	// ErrUnexpectedZeroCount is reported when an unpadded response contains
	// a record with a count of zero.
	ErrUnexpectedZeroCount = errors.New("zero occurrence count in unpadded response")
)

// TransportError is returned when the range request could not be completed:
// DNS failure, refused connection, timeout or cancellation.
type TransportError struct {
	Prefix string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("range request for prefix %s failed: %v", e.Prefix, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteServiceError is returned when the range endpoint answers with
// anything other than 200 OK.
type RemoteServiceError struct {
	Prefix     string
	StatusCode int
}

func (e *RemoteServiceError) Error() string {
	return fmt.Sprintf("range request for prefix %s returned status %d, check the API and try again", e.Prefix, e.StatusCode)
}

// ParseError reports a malformed record in a range response. Line is
// 1-based.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed range record on line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
