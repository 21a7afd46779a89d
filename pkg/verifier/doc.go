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

// Package verifier checks an ads.cert digital signature against a digest.
//
// The verifier is the innermost component of the verification pipeline:
// it takes an algorithm-tagged public key, the canonical digest and the
// transport-encoded signature string, and answers whether they match.
//
//	v := verifier.NewDefaultVerifier()
//	ok, err := v.Verify(handle, d, "MEUCIB...")
//
// The boolean and the error mean different things. ok == false with a nil
// error is a completed cryptographic check that did not match. A
// *FormatError means the signature string could not even be decoded. That
// distinction is useful for diagnostics, but callers must treat it as a
// verification failure all the same, never as success.
//
// Verify is a pure function: no state, no I/O, safe for concurrent use.
package verifier
