package digest

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/openrtb"
)

// Size is the length of a Digest in bytes.
const Size = sha256.Size

// A Digest is the SHA-256 of the canonical field string. It is a value
// type; callers must not assume anything about it beyond equality.
type Digest [Size]byte

// valueEscaper keeps '&' and '=' out of encoded values so the canonical
// string parses unambiguously. '%' is escaped so escaping round-trips.
var valueEscaper = strings.NewReplacer(
	"%", "%25",
	"&", "%26",
	"=", "%3D",
)

// FromFieldMap builds the digest from caller-extracted field values
// (trust-supplied mode). Every field named by order must be present in
// fields; extra keys are ignored.
func FromFieldMap(fields map[string]string, order FieldOrderSpec) (Digest, error) {
	if len(order) == 0 {
		return Digest{}, fmt.Errorf("%w: empty spec", ErrMalformedFieldSpec)
	}
	if fields == nil {
		return Digest{}, fmt.Errorf("%w: nil field map", ErrMissingField)
	}

	values := make([]string, len(order))
	for i, name := range order {
		v, ok := fields[name]
		if !ok {
			return Digest{}, fmt.Errorf("%w: %q", ErrMissingField, name)
		}
		values[i] = v
	}
	return sum(order, values), nil
}

// FromRequest builds the digest by walking the live request object
// (recompute mode). The dsmap is taken from req.Source. A dsmap field the
// request cannot resolve is a malformed spec, not a missing value: absent
// model fields canonicalize to the empty string.
func FromRequest(req *openrtb.BidRequest) (Digest, error) {
	if req == nil || req.Source == nil {
		return Digest{}, fmt.Errorf("%w: request has no source", ErrMalformedFieldSpec)
	}

	order, err := ParseFieldOrderSpec(req.Source.DSMap)
	if err != nil {
		return Digest{}, err
	}

	values := make([]string, len(order))
	for i, name := range order {
		v, err := openrtb.FieldValue(req, name)
		if err != nil {
			if errors.Is(err, openrtb.ErrUnknownField) {
				return Digest{}, fmt.Errorf("%w: %v", ErrMalformedFieldSpec, err)
			}
			return Digest{}, err
		}
		values[i] = v
	}
	return sum(order, values), nil
}

// CanonicalString renders the digest input string for the given order and
// values, without hashing. Exposed for diagnostics and conformance tests.
func CanonicalString(order FieldOrderSpec, values []string) string {
	var b strings.Builder
	for i, name := range order {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(valueEscaper.Replace(values[i]))
	}
	return b.String()
}

func sum(order FieldOrderSpec, values []string) Digest {
	return sha256.Sum256([]byte(CanonicalString(order, values)))
}
