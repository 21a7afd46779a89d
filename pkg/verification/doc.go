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

// Package verification orchestrates ads.cert verification of OpenRTB bid
// requests.
//
// The Service validates inputs, builds the canonical digest, resolves the
// signer's public key and checks the signature, in that order. Two entry
// points converge on the same decision procedure.
//
// # Verifying a structured request
//
//	svc := verification.NewService()
//	ok, err := svc.VerifyRequest(ctx, req)
//
// By default the digest is recomputed from the live request object. A
// caller that already extracted the digest fields can assert them:
//
//	ok, err := svc.VerifyRequest(ctx, req, verification.WithFieldMap(fields))
//
// WithDebug forces a full recompute from the object even when a field map
// was supplied, an expensive but fully independent recheck:
//
//	ok, err := svc.VerifyRequest(ctx, req, verification.WithDebug())
//
// # Verifying from raw parts
//
//	ok, err := svc.VerifyParts(ctx, verification.Parts{
//	    Key:            verification.KeyFromURL("https://ads.example.com/ads.cert"),
//	    FieldOrderSpec: "domain=&ft=&tid=",
//	    Signature:      ds,
//	    Digest:         verification.DigestFromFields(fields),
//	})
//
// # Outcomes
//
// A call returns (true, nil) or (false, nil) only after a completed
// cryptographic comparison. Every other outcome is an error: invalid
// inputs fail fast with *InvalidInputError before any network or crypto
// work, and any failure inside the pipeline is wrapped in *ProcessError
// carrying the original cause. Callers must treat every error as
// "verification could not be performed", never as "verification failed".
package verification
