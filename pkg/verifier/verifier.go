package verifier

import (
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/digest"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/keys"
)

// SignatureVerifier checks a digital signature against a digest.
type SignatureVerifier interface {
	// Verify decodes signature from its transport encoding and checks it
	// against d using key. false with nil error means the signature was
	// decoded and checked but did not match. A *FormatError means the
	// signature could not be decoded at all.
	Verify(key *keys.PublicKeyHandle, d digest.Digest, signature string) (bool, error)
}

// FormatError reports a signature string that could not be decoded.
type FormatError struct {
	Reason string
	Cause  error
}

func (e *FormatError) Error() string {
	msg := "malformed signature: " + e.Reason
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Cause }
