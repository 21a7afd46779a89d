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

// Package server provides HTTP middleware that verifies ads.cert signed
// bid requests before they reach an endpoint handler.
//
// # Basic Usage
//
//	svc := verification.NewService()
//	middleware := server.NewSignatureAuthMiddleware(svc, logger)
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    req, ok := server.BidRequestFromContext(r.Context())
//	    if !ok {
//	        http.Error(w, "Unauthorized", http.StatusUnauthorized)
//	        return
//	    }
//	    fmt.Fprintf(w, "verified bid request %s", req.ID)
//	})
//
//	http.Handle("/bid", middleware.Wrap(handler))
//
// # Optional Verification
//
// With SetOptional(true), unsigned requests pass through to the handler
// without a bid request in context; signed requests are still verified
// and rejected on mismatch. Use this while a supply path is migrating to
// ads.cert.
//
// # Error Responses
//
// Failures respond 401 via the default error handler; SetErrorHandler
// installs a custom one. The wrapped handler always receives the request
// body exactly as it arrived.
package server
