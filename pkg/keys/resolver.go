package keys

import "context"

// Resolver turns a certificate URL into a usable public key handle.
type Resolver interface {
	// Resolve fetches and parses the public key at url. Any failure,
	// transient or permanent, is reported as a *ResolutionError; the
	// resolver does not retry.
	Resolve(ctx context.Context, url string) (*PublicKeyHandle, error)
}

// Transport fetches raw key material. Satisfied by HTTPTransport; test
// code substitutes its own.
type Transport interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ResolutionError reports a failed key fetch or parse. Reason is always
// set; Cause carries the underlying error when there is one.
type ResolutionError struct {
	URL    string
	Reason string
	Cause  error
}

func (e *ResolutionError) Error() string {
	msg := "key resolution failed: " + e.Reason
	if e.URL != "" {
		msg += " (" + e.URL + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ResolutionError) Unwrap() error { return e.Cause }
