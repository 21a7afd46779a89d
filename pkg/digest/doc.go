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

// Package digest builds the canonical ads.cert digest of a bid request.
//
// The digest is SHA-256 over a canonical string assembled from the fields
// named by the request's dsmap, in dsmap order:
//
//	domain=newsite.com&ft=d&tid=ab101
//
// Order is semantically significant: permuting the dsmap changes the
// digest. The canonical string must be byte-identical between signer and
// verifier, so every value is escaped and formatted deterministically.
//
// # Field order specs
//
// Two dsmap encodings are accepted, both order-preserving:
//
//	order, err := digest.ParseFieldOrderSpec("domain=&ft=&tid=")
//	order, err := digest.ParseFieldOrderSpec("domain,ft,tid")
//
// # Building digests
//
// From caller-extracted values (trust-supplied mode):
//
//	d, err := digest.FromFieldMap(map[string]string{
//	    "domain": "newsite.com", "ft": "d", "tid": "ab101",
//	}, order)
//
// From the live request object (recompute mode):
//
//	d, err := digest.FromRequest(req)
//
// FromRequest extracts every value through openrtb.FieldValue, so the
// digest reflects the current object state rather than caller-asserted
// values.
package digest
