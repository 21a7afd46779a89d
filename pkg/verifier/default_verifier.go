package verifier

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"encoding/base64"
	"fmt"

	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/digest"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/keys"
)

// DefaultVerifier implements SignatureVerifier for the ads.cert signature
// schemes: Ed25519, ECDSA P-256 (ASN.1) and RSA-PSS over SHA-256.
// Signatures travel as standard base64.
type DefaultVerifier struct{}

// NewDefaultVerifier creates a new DefaultVerifier.
func NewDefaultVerifier() *DefaultVerifier {
	return &DefaultVerifier{}
}

// Verify checks signature against d using key.
func (v *DefaultVerifier) Verify(key *keys.PublicKeyHandle, d digest.Digest, signature string) (bool, error) {
	if key == nil || key.Key == nil {
		return false, fmt.Errorf("public key cannot be nil")
	}
	if signature == "" {
		return false, &FormatError{Reason: "empty signature"}
	}

	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, &FormatError{Reason: "invalid base64", Cause: err}
	}

	switch key.Algorithm {
	case keys.AlgorithmEd25519:
		pub, ok := key.Key.(ed25519.PublicKey)
		if !ok {
			return false, fmt.Errorf("handle tagged %s holds %T", key.Algorithm, key.Key)
		}
		if len(sig) != ed25519.SignatureSize {
			return false, &FormatError{Reason: fmt.Sprintf("ed25519 signature length %d, want %d", len(sig), ed25519.SignatureSize)}
		}
		return ed25519.Verify(pub, d[:], sig), nil

	case keys.AlgorithmECDSAP256:
		pub, ok := key.Key.(*ecdsa.PublicKey)
		if !ok {
			return false, fmt.Errorf("handle tagged %s holds %T", key.Algorithm, key.Key)
		}
		return ecdsa.VerifyASN1(pub, d[:], sig), nil

	case keys.AlgorithmRSAPSS:
		pub, ok := key.Key.(*rsa.PublicKey)
		if !ok {
			return false, fmt.Errorf("handle tagged %s holds %T", key.Algorithm, key.Key)
		}
		if err := rsa.VerifyPSS(pub, crypto.SHA256, d[:], sig, nil); err != nil {
			return false, nil
		}
		return true, nil

	default:
		return false, fmt.Errorf("unsupported signature algorithm %q", key.Algorithm)
	}
}
