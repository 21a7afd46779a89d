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

// adscert-verify checks the ads.cert signature of an OpenRTB bid request.
//
// Exit codes: 0 verified, 1 signature did not match, 2 verification could
// not be performed.
package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/keys"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/openrtb"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/verification"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/verifier"
)

const (
	exitVerified    = 0
	exitNotVerified = 1
	exitError       = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var (
		requestPath string
		pubkeyPath  string
		debug       bool
		timeout     time.Duration
	)

	code := exitError
	cmd := &cobra.Command{
		Use:           "adscert-verify",
		Short:         "Verify the ads.cert signature of an OpenRTB bid request",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code = verify(cmd.Context(), logger, requestPath, pubkeyPath, debug, timeout)
			return nil
		},
	}
	cmd.Flags().StringVar(&requestPath, "request", "", "path to the bid request JSON (required)")
	cmd.Flags().StringVar(&pubkeyPath, "pubkey", "", "path to a PEM public key; when unset the key is resolved from source.cert")
	cmd.Flags().BoolVar(&debug, "debug", false, "recompute the digest from the request object even when field values are asserted")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "overall verification timeout")
	cmd.MarkFlagRequired("request")

	if err := cmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		return exitError
	}
	return code
}

func verify(ctx context.Context, logger zerolog.Logger, requestPath, pubkeyPath string, debug bool, timeout time.Duration) int {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload, err := os.ReadFile(requestPath)
	if err != nil {
		logger.Error().Err(err).Msg("read bid request")
		return exitError
	}
	var req openrtb.BidRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		logger.Error().Err(err).Msg("decode bid request")
		return exitError
	}

	var opts []verification.Option
	if debug {
		opts = append(opts, verification.WithDebug())
	}
	if pubkeyPath != "" {
		pemBytes, err := os.ReadFile(pubkeyPath)
		if err != nil {
			logger.Error().Err(err).Msg("read public key")
			return exitError
		}
		handle, err := keys.ParsePublicKeyPEM(pemBytes)
		if err != nil {
			logger.Error().Err(err).Msg("parse public key")
			return exitError
		}
		opts = append(opts, verification.WithPublicKey(handle))
	}

	svc := verification.NewServiceWith(keys.NewHTTPResolver(nil), verifier.NewDefaultVerifier())

	ok, err := svc.VerifyRequest(ctx, &req, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("verification could not be performed")
		return exitError
	}
	if !ok {
		logger.Warn().Str("request_id", req.ID).Msg("signature did not match")
		return exitNotVerified
	}
	logger.Info().Str("request_id", req.ID).Msg("signature verified")
	return exitVerified
}
