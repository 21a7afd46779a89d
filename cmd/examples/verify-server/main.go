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

// verify-server runs a bid endpoint behind the signature middleware with a
// cached key resolver, the setup an exchange would use in production.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/keys"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/server"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/verification"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/verifier"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Cache resolved signer keys for five minutes; concurrent misses for
	// the same cert URL trigger a single fetch.
	resolver := keys.NewCachingResolver(keys.NewHTTPResolver(nil), 5*time.Minute)
	svc := verification.NewServiceWith(resolver, verifier.NewDefaultVerifier())

	middleware := server.NewSignatureAuthMiddleware(svc, logger)

	bidHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := server.BidRequestFromContext(r.Context())
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		fmt.Fprintf(w, "verified bid request %s\n", req.ID)
	})

	http.Handle("/bid", middleware.Wrap(bidHandler))

	logger.Info().Msg("listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", nil))
}
