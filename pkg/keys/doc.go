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

// Package keys resolves ads.cert signer public keys.
//
// A bid request names its signer's public key by URL (Source.Cert). This
// package fetches that key material, parses it and tags it with its
// algorithm so the verifier knows how to use it.
//
// # Resolving a key
//
//	resolver := keys.NewHTTPResolver(nil) // default transport
//	handle, err := resolver.Resolve(ctx, "https://adserver.example.com/ads.cert")
//
// Every failure (network, HTTP status, PEM syntax, unsupported
// algorithm) surfaces as a *ResolutionError. The resolver never retries:
// whether "could not fetch" warrants a retry is the caller's policy, and
// conflating it with "verification failed" would be a security bug.
//
// # Caching
//
// The core resolver fetches on every call. Deployments verifying at bid
// volume should wrap it:
//
//	cached := keys.NewCachingResolver(resolver, 5*time.Minute)
//
// CachingResolver deduplicates concurrent fetches of the same URL and
// caches handles for a TTL with explicit invalidation. It is a decorator:
// the verification core stays correct without it.
package keys
