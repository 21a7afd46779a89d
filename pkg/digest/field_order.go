package digest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedFieldSpec reports a dsmap that cannot be parsed or that names
// a field the request cannot resolve.
var ErrMalformedFieldSpec = errors.New("malformed field order spec")

// ErrMissingField reports a field named by the dsmap with no value in the
// supplied field map.
var ErrMissingField = errors.New("missing digest field")

// FieldOrderSpec is the ordered list of field identifiers that participate
// in the digest. Order is part of the signing contract.
type FieldOrderSpec []string

// ParseFieldOrderSpec parses a dsmap string into a FieldOrderSpec.
//
// Both ads.cert template form ("domain=&ft=&tid=") and bare comma form
// ("domain,ft,tid") are accepted. Empty specs, empty field names and
// duplicate field names are rejected.
func ParseFieldOrderSpec(dsmap string) (FieldOrderSpec, error) {
	dsmap = strings.TrimSpace(dsmap)
	if dsmap == "" {
		return nil, fmt.Errorf("%w: empty dsmap", ErrMalformedFieldSpec)
	}

	var parts []string
	if strings.Contains(dsmap, "&") || strings.Contains(dsmap, "=") {
		parts = strings.Split(strings.TrimSuffix(dsmap, "&"), "&")
		for i, p := range parts {
			name, rest, found := strings.Cut(p, "=")
			if !found || rest != "" {
				return nil, fmt.Errorf("%w: segment %q", ErrMalformedFieldSpec, p)
			}
			parts[i] = name
		}
	} else {
		parts = strings.Split(dsmap, ",")
	}

	spec := make(FieldOrderSpec, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, name := range parts {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty field name in %q", ErrMalformedFieldSpec, dsmap)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrMalformedFieldSpec, name)
		}
		seen[name] = struct{}{}
		spec = append(spec, name)
	}
	return spec, nil
}

// String renders the spec back in ads.cert template form.
func (s FieldOrderSpec) String() string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	for i, name := range s {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
	}
	return b.String()
}
