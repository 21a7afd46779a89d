// Copyright (C) 2025 Media.net
//
// This file is part of ads-cert-openrtb3-verifier.
//
// ads-cert-openrtb3-verifier is free software: you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// ads-cert-openrtb3-verifier is distributed in the hope that it will be
// useful, but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with ads-cert-openrtb3-verifier.  If not, see
// <https://www.gnu.org/licenses/>.

// Package openrtb carries the subset of the OpenRTB bid request model that
// ads.cert signature verification needs.
//
// The model is intentionally partial: only the Source record (cert, ds,
// dsmap) and the business fields that commonly participate in a digest are
// present. It is not a general OpenRTB implementation.
//
// # Signed requests
//
// A signed request carries three values inside Source:
//
//	req := &openrtb.BidRequest{
//	    ID: "1234",
//	    Source: &openrtb.Source{
//	        Cert:  "https://adserver.example.com/ads.cert",
//	        DS:    "MEUCIB...",            // base64 signature
//	        DSMap: "domain=&ft=&tid=",     // digest field order
//	        TID:   "ab101",
//	    },
//	    Site: &openrtb.Site{Domain: "newsite.com"},
//	}
//
// # Digest field access
//
// FieldValue resolves a digest field identifier to its canonical string
// representation, used when the digest is recomputed from the live request:
//
//	v, err := openrtb.FieldValue(req, "domain") // "newsite.com"
//
// Identifiers not covered by the built-in set are looked up in Source.Ext,
// so signers may digest custom fields without a model change.
package openrtb
