package verification

import (
	"context"

	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/digest"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/keys"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/openrtb"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/verifier"
)

// Service is the verification orchestrator. It is stateless per call and
// safe for concurrent use.
type Service struct {
	resolver keys.Resolver
	verifier verifier.SignatureVerifier
}

// NewService creates a Service with the default HTTP key resolver and
// signature verifier.
func NewService() *Service {
	return NewServiceWith(keys.NewHTTPResolver(nil), verifier.NewDefaultVerifier())
}

// NewServiceWith creates a Service with a custom resolver and verifier,
// e.g. a keys.CachingResolver or test doubles.
func NewServiceWith(resolver keys.Resolver, sigVerifier verifier.SignatureVerifier) *Service {
	return &Service{resolver: resolver, verifier: sigVerifier}
}

// VerifyRequest verifies the ads.cert signature of a structured bid
// request. See the package documentation for the digest- and key-source
// decision rules.
func (s *Service) VerifyRequest(ctx context.Context, req *openrtb.BidRequest, opts ...Option) (bool, error) {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	// Fail fast on missing inputs, before any crypto or network work.
	if req == nil {
		return false, &InvalidInputError{Reason: "bid request is nil"}
	}
	if req.Source == nil {
		return false, &InvalidInputError{Reason: "bid request has no source"}
	}
	src := req.Source
	if o.key == nil && src.Cert == "" {
		return false, &InvalidInputError{Reason: "certificate url is empty"}
	}
	if src.DS == "" {
		return false, &InvalidInputError{Reason: "digital signature is empty"}
	}
	if src.DSMap == "" {
		return false, &InvalidInputError{Reason: "dsmap is empty"}
	}

	var (
		d   digest.Digest
		err error
	)
	switch {
	case o.debug:
		// Independent recheck: walk the live object, ignore asserted values.
		d, err = digest.FromRequest(req)
	case o.fieldMap != nil:
		var order digest.FieldOrderSpec
		order, err = digest.ParseFieldOrderSpec(src.DSMap)
		if err == nil {
			d, err = digest.FromFieldMap(o.fieldMap, order)
		}
	default:
		d, err = digest.FromRequest(req)
	}
	if err != nil {
		return false, &ProcessError{Cause: err}
	}

	keySrc := KeySource{handle: o.key, url: src.Cert}
	return s.verify(ctx, keySrc, d, src.DS)
}

// VerifyParts verifies a signature from individually supplied parts.
func (s *Service) VerifyParts(ctx context.Context, p Parts) (bool, error) {
	if p.Key.empty() {
		return false, &InvalidInputError{Reason: "no public key or certificate url"}
	}
	if p.Signature == "" {
		return false, &InvalidInputError{Reason: "digital signature is empty"}
	}
	if p.FieldOrderSpec == "" {
		return false, &InvalidInputError{Reason: "dsmap is empty"}
	}
	if p.Digest.badHex {
		return false, &InvalidInputError{Reason: "digest is not a valid hex-encoded sha-256"}
	}
	if p.Digest.empty() {
		return false, &InvalidInputError{Reason: "no digest, field map or request to digest"}
	}

	var (
		d   digest.Digest
		err error
	)
	switch {
	case p.Digest.precomputed != nil:
		d = *p.Digest.precomputed
	case p.Digest.fields != nil:
		var order digest.FieldOrderSpec
		order, err = digest.ParseFieldOrderSpec(p.FieldOrderSpec)
		if err == nil {
			d, err = digest.FromFieldMap(p.Digest.fields, order)
		}
	default:
		d, err = digest.FromRequest(p.Digest.request)
	}
	if err != nil {
		return false, &ProcessError{Cause: err}
	}

	return s.verify(ctx, p.Key, d, p.Signature)
}

// verify is the single decision procedure both entry points converge on:
// obtain the key, then check the signature. Inputs are already validated.
func (s *Service) verify(ctx context.Context, keySrc KeySource, d digest.Digest, signature string) (bool, error) {
	handle := keySrc.handle
	if handle == nil {
		var err error
		handle, err = s.resolver.Resolve(ctx, keySrc.url)
		if err != nil {
			return false, &ProcessError{Cause: err}
		}
	}

	ok, err := s.verifier.Verify(handle, d, signature)
	if err != nil {
		return false, &ProcessError{Cause: err}
	}
	return ok, nil
}
