package oracle

import "errors"

var (
	// ErrUnexpectedStatus is returned by Breach.Lookup for any non-2xx reply.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrMalformedRange is returned by Breach.Lookup when a body line is not SUFFIX:COUNT.
	ErrMalformedRange = errors.New("malformed range response")
)
