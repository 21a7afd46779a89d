package openrtb

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownField reports a digest field identifier that neither the model
// nor Source.Ext can resolve.
var ErrUnknownField = errors.New("unknown digest field")

// FieldValue returns the canonical string value of a digest field on req.
//
// Canonical means locale-free and stable: integers in base 10, floats in
// shortest 'f' notation, absent optional objects as the empty string.
// The encoding must match the signer's, so any change here is a breaking
// change to the interop contract.
func FieldValue(req *BidRequest, name string) (string, error) {
	if req == nil {
		return "", fmt.Errorf("field %q: nil request", name)
	}

	switch name {
	case "id":
		return req.ID, nil
	case "test":
		return strconv.Itoa(req.Test), nil
	case "at":
		return strconv.Itoa(req.AT), nil
	case "tmax":
		return strconv.Itoa(req.TMax), nil
	case "tid":
		if req.Source == nil {
			return "", nil
		}
		return req.Source.TID, nil
	case "cert":
		if req.Source == nil {
			return "", nil
		}
		return req.Source.Cert, nil
	case "pchain":
		if req.Source == nil {
			return "", nil
		}
		return req.Source.PChain, nil
	case "ft":
		// Format type: d(isplay) when a banner impression is present,
		// otherwise empty. Video/audio are outside this model subset.
		if len(req.Imp) > 0 && req.Imp[0].Banner != nil {
			return "d", nil
		}
		return "", nil
	case "domain":
		if req.Site == nil {
			return "", nil
		}
		return req.Site.Domain, nil
	case "page":
		if req.Site == nil {
			return "", nil
		}
		return req.Site.Page, nil
	case "bundle":
		if req.App == nil {
			return "", nil
		}
		return req.App.Bundle, nil
	case "ua":
		if req.Device == nil {
			return "", nil
		}
		return req.Device.UA, nil
	case "ip":
		if req.Device == nil {
			return "", nil
		}
		return req.Device.IP, nil
	case "ipv6":
		if req.Device == nil {
			return "", nil
		}
		return req.Device.IPv6, nil
	case "bidfloor":
		if len(req.Imp) == 0 {
			return "", nil
		}
		return canonicalFloat(req.Imp[0].BidFloor), nil
	case "w":
		if len(req.Imp) == 0 || req.Imp[0].Banner == nil {
			return "", nil
		}
		return strconv.Itoa(req.Imp[0].Banner.W), nil
	case "h":
		if len(req.Imp) == 0 || req.Imp[0].Banner == nil {
			return "", nil
		}
		return strconv.Itoa(req.Imp[0].Banner.H), nil
	}

	if req.Source != nil {
		if v, ok := req.Source.Ext[name]; ok {
			return canonicalExtValue(name, v)
		}
	}
	return "", fmt.Errorf("field %q: %w", name, ErrUnknownField)
}

// canonicalFloat renders a float without exponent and without trailing
// zeros, independent of locale ("1.5", not "1,50").
func canonicalFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func canonicalExtValue(name string, v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64: // encoding/json decodes all numbers to float64
		return canonicalFloat(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("field %q: ext value of type %T is not digestable", name, v)
	}
}
