package keys

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// defaultFetchTimeout bounds a single key fetch when the caller's
	// context carries no earlier deadline.
	defaultFetchTimeout = 5 * time.Second

	// maxKeyBytes caps the response body. PEM public keys are well under
	// 1 KiB; anything much larger is not a key.
	maxKeyBytes = 64 * 1024
)

// HTTPTransport fetches key material over HTTP(S). It performs exactly one
// request per call and never retries.
type HTTPTransport struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPTransport creates a transport using client, or http.DefaultClient
// when client is nil.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client, timeout: defaultFetchTimeout}
}

// Fetch retrieves the body at url. Only http and https URLs are accepted;
// a cert URL is attacker-influenced data and must not reach other schemes.
func (t *HTTPTransport) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxKeyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxKeyBytes {
		return nil, fmt.Errorf("response exceeds %d bytes", maxKeyBytes)
	}
	return body, nil
}

// HTTPResolver resolves certificate URLs by fetching PEM key material over
// the configured transport.
type HTTPResolver struct {
	transport Transport
}

// NewHTTPResolver creates a resolver. A nil client selects
// http.DefaultClient.
func NewHTTPResolver(client *http.Client) *HTTPResolver {
	return &HTTPResolver{transport: NewHTTPTransport(client)}
}

// NewResolverWithTransport creates a resolver over a custom transport.
func NewResolverWithTransport(transport Transport) *HTTPResolver {
	return &HTTPResolver{transport: transport}
}

// Resolve fetches and parses the public key at url.
func (r *HTTPResolver) Resolve(ctx context.Context, url string) (*PublicKeyHandle, error) {
	if url == "" {
		return nil, &ResolutionError{Reason: "empty url"}
	}

	data, err := r.transport.Fetch(ctx, url)
	if err != nil {
		return nil, &ResolutionError{URL: url, Reason: "fetch key material", Cause: err}
	}

	handle, err := ParsePublicKeyPEM(data)
	if err != nil {
		if re, ok := err.(*ResolutionError); ok {
			re.URL = url
			return nil, re
		}
		return nil, &ResolutionError{URL: url, Reason: "parse key material", Cause: err}
	}
	return handle, nil
}
