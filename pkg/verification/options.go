package verification

import (
	"encoding/hex"

	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/digest"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/keys"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/openrtb"
)

// KeySource names where the signer's public key comes from: a handle the
// caller already holds, or a certificate URL to resolve.
type KeySource struct {
	handle *keys.PublicKeyHandle
	url    string
}

// KeyFromHandle uses a caller-supplied public key. The caller owns the
// handle's lifetime.
func KeyFromHandle(h *keys.PublicKeyHandle) KeySource {
	return KeySource{handle: h}
}

// KeyFromURL resolves the public key from url at verification time.
func KeyFromURL(url string) KeySource {
	return KeySource{url: url}
}

func (k KeySource) empty() bool {
	return k.handle == nil && k.url == ""
}

// DigestSource names where the digest comes from in raw-parts mode: an
// already-computed digest, caller-extracted field values, or a live
// request to recompute from.
type DigestSource struct {
	precomputed *digest.Digest
	fields      map[string]string
	request     *openrtb.BidRequest
	badHex      bool
}

// DigestFromHex supplies a precomputed digest as a hex string.
func DigestFromHex(s string) DigestSource {
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != digest.Size {
		return DigestSource{badHex: true}
	}
	var d digest.Digest
	copy(d[:], raw)
	return DigestSource{precomputed: &d}
}

// DigestFromFields supplies caller-extracted field values; the digest is
// built from them in field-order-spec order without consulting any
// request object (trust-supplied mode).
func DigestFromFields(fields map[string]string) DigestSource {
	return DigestSource{fields: fields}
}

// RecomputeFromRequest builds the digest by walking the live request
// object (recompute mode).
func RecomputeFromRequest(req *openrtb.BidRequest) DigestSource {
	return DigestSource{request: req}
}

func (d DigestSource) empty() bool {
	return d.precomputed == nil && d.fields == nil && d.request == nil && !d.badHex
}

// Parts is the raw-parts verification input (spec'd key, digest, dsmap
// and signature supplied individually rather than inside a request).
type Parts struct {
	Key            KeySource
	Digest         DigestSource
	FieldOrderSpec string
	Signature      string
}

// Option adjusts a VerifyRequest call.
type Option func(*requestOptions)

type requestOptions struct {
	debug    bool
	key      *keys.PublicKeyHandle
	fieldMap map[string]string
}

// WithDebug forces the digest to be recomputed from the live request
// object, ignoring any caller-supplied field map.
func WithDebug() Option {
	return func(o *requestOptions) { o.debug = true }
}

// WithPublicKey verifies with a caller-supplied key instead of resolving
// Source.Cert.
func WithPublicKey(h *keys.PublicKeyHandle) Option {
	return func(o *requestOptions) { o.key = h }
}

// WithFieldMap supplies caller-extracted digest field values. Unless
// WithDebug is also given, the digest is built from these values rather
// than from the request object.
func WithFieldMap(fields map[string]string) Option {
	return func(o *requestOptions) { o.fieldMap = fields }
}
