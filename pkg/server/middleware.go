package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/openrtb"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/verification"
)

type contextKey string

const bidRequestKey contextKey = "verified_bid_request"

// maxBodyBytes caps the request body the middleware is willing to buffer.
const maxBodyBytes = 1 << 20

// ErrorHandler handles verification failures.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// SignatureAuthMiddleware provides HTTP middleware that verifies the
// ads.cert signature of incoming OpenRTB bid requests before they reach
// the handler.
type SignatureAuthMiddleware struct {
	svc          *verification.Service
	errorHandler ErrorHandler
	logger       zerolog.Logger
	optional     bool
	debug        bool
}

// NewSignatureAuthMiddleware creates middleware around svc.
func NewSignatureAuthMiddleware(svc *verification.Service, logger zerolog.Logger) *SignatureAuthMiddleware {
	return &SignatureAuthMiddleware{
		svc:          svc,
		errorHandler: defaultErrorHandler,
		logger:       logger,
		optional:     false,
	}
}

// SetErrorHandler sets a custom error handler.
func (m *SignatureAuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional.
// If true, unsigned requests are allowed to pass through.
func (m *SignatureAuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// SetDebug forces digest recomputation from the decoded request object on
// every verification.
func (m *SignatureAuthMiddleware) SetDebug(debug bool) {
	m.debug = debug
}

// Wrap wraps an HTTP handler with ads.cert signature verification.
func (m *SignatureAuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CORS preflight carries no bid request.
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		var bodyBytes []byte
		if r.Body != nil {
			var err error
			bodyBytes, err = io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
			r.Body.Close()
			if err != nil {
				m.errorHandler(w, r, fmt.Errorf("read body: %w", err))
				return
			}
		}
		// Restore the body for the handler regardless of outcome.
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		var req openrtb.BidRequest
		if err := json.Unmarshal(bodyBytes, &req); err != nil {
			m.errorHandler(w, r, fmt.Errorf("decode bid request: %w", err))
			return
		}

		if req.Source == nil || req.Source.DS == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			m.errorHandler(w, r, fmt.Errorf("bid request is not signed"))
			return
		}

		var opts []verification.Option
		if m.debug {
			opts = append(opts, verification.WithDebug())
		}

		ok, err := m.svc.VerifyRequest(r.Context(), &req, opts...)
		if err != nil {
			m.logger.Warn().Err(err).Str("request_id", req.ID).Msg("signature verification could not be performed")
			m.errorHandler(w, r, fmt.Errorf("signature verification failed: %w", err))
			return
		}
		if !ok {
			m.logger.Warn().Str("request_id", req.ID).Msg("signature did not match")
			m.errorHandler(w, r, fmt.Errorf("signature did not match"))
			return
		}

		m.logger.Debug().Str("request_id", req.ID).Msg("bid request signature verified")

		ctx := context.WithValue(r.Context(), bidRequestKey, &req)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BidRequestFromContext extracts the verified bid request from the
// request context.
func BidRequestFromContext(ctx context.Context) (*openrtb.BidRequest, bool) {
	req, ok := ctx.Value(bidRequestKey).(*openrtb.BidRequest)
	return req, ok
}

// defaultErrorHandler is the default error handler.
func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	http.Error(w, fmt.Sprintf("Unauthorized: %s", err.Error()), http.StatusUnauthorized)
}
