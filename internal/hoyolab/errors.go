package hoyolab

import (
	"errors"
	"fmt"

	"github.com/aurceive/genshin-dashboard/internal/session"
)

// ErrNoCredentials is returned before any network call when the client has no
// usable session tokens.
var ErrNoCredentials = session.ErrNoCredentials

// ErrMalformed marks a response that was received but could not be understood.
var ErrMalformed = errors.New("malformed response")

// RemoteError is a non-zero retcode from the aggregator.
type RemoteError struct {
	Endpoint string
	Retcode  int
	Message  string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "request rejected by data service"
}

// TransportError covers network failures, HTTP status errors and payloads that
// do not decode.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	ep := endpointLabel(e.Endpoint)
	if e.Err == nil {
		return fmt.Sprintf("could not reach data service (%s)", ep)
	}
	return fmt.Sprintf("could not reach data service (%s): %v", ep, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsRemote reports whether err is (or wraps) a RemoteError.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
