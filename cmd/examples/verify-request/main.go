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

package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/digest"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/openrtb"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/verification"
)

func main() {
	fmt.Println("ads.cert Verifier - Verify Request Example")
	fmt.Println("==========================================")

	ctx := context.Background()

	// Generate a signer key pair (normally the ad server owns this)
	fmt.Println("\n1. Generating signer key pair...")
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("Failed to generate key pair: %v", err)
	}

	// Serve the public key the way an ad server serves its ads.cert file
	fmt.Println("2. Serving the public key over HTTP...")
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		log.Fatalf("Failed to marshal public key: %v", err)
	}
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(pemBytes)
	}))
	defer srv.Close()

	// Build and sign a bid request
	fmt.Println("3. Signing a bid request...")
	req := &openrtb.BidRequest{
		ID: "example-request",
		Source: &openrtb.Source{
			TID:   "ab101",
			Cert:  srv.URL + "/ads.cert",
			DSMap: "domain=&ft=&tid=",
		},
		Site: &openrtb.Site{Domain: "newsite.com"},
		Imp: []openrtb.Imp{
			{ID: "1", Banner: &openrtb.Banner{W: 300, H: 250}},
		},
	}
	d, err := digest.FromRequest(req)
	if err != nil {
		log.Fatalf("Failed to build digest: %v", err)
	}
	req.Source.DS = base64.StdEncoding.EncodeToString(ed25519.Sign(priv, d[:]))

	// Verify it
	fmt.Println("4. Verifying...")
	svc := verification.NewService()
	ok, err := svc.VerifyRequest(ctx, req)
	if err != nil {
		log.Fatalf("Verification could not be performed: %v", err)
	}
	fmt.Printf("   Verified: %v\n", ok)

	// Tamper with the request and watch verification fail
	fmt.Println("5. Tampering with the request...")
	req.Site.Domain = "evilsite.com"
	ok, err = svc.VerifyRequest(ctx, req)
	if err != nil {
		log.Fatalf("Verification could not be performed: %v", err)
	}
	fmt.Printf("   Verified after tamper: %v\n", ok)
}
