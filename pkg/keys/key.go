package keys

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
)

// Algorithm identifies the signature scheme a public key belongs to.
type Algorithm string

const (
	AlgorithmEd25519   Algorithm = "ed25519"
	AlgorithmECDSAP256 Algorithm = "ecdsa-p256"
	AlgorithmRSAPSS    Algorithm = "rsa-pss"
)

const minRSABits = 2048

// PublicKeyHandle is an algorithm-tagged public key usable only for
// verification. Handles are immutable after construction.
type PublicKeyHandle struct {
	Algorithm Algorithm
	Key       crypto.PublicKey
}

// NewHandle tags an already-parsed public key with its algorithm.
// Unsupported key types are rejected.
func NewHandle(key crypto.PublicKey) (*PublicKeyHandle, error) {
	switch k := key.(type) {
	case ed25519.PublicKey:
		return &PublicKeyHandle{Algorithm: AlgorithmEd25519, Key: k}, nil
	case *ecdsa.PublicKey:
		if k.Curve != elliptic.P256() {
			return nil, &ResolutionError{Reason: fmt.Sprintf("unsupported ecdsa curve %s", k.Curve.Params().Name)}
		}
		return &PublicKeyHandle{Algorithm: AlgorithmECDSAP256, Key: k}, nil
	case *rsa.PublicKey:
		if bits := k.N.BitLen(); bits < minRSABits {
			return nil, &ResolutionError{Reason: fmt.Sprintf("rsa key too small: %d bits", bits)}
		}
		return &PublicKeyHandle{Algorithm: AlgorithmRSAPSS, Key: k}, nil
	default:
		return nil, &ResolutionError{Reason: fmt.Sprintf("unsupported key type %T", key)}
	}
}

// ParsePublicKeyPEM parses PKIX public key material in PEM form into a
// handle. Private keys and certificates are rejected outright.
func ParsePublicKeyPEM(data []byte) (*PublicKeyHandle, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, &ResolutionError{Reason: "no PEM block found"}
	}
	if block.Type != "PUBLIC KEY" {
		return nil, &ResolutionError{Reason: fmt.Sprintf("unexpected PEM block %q, want PUBLIC KEY", block.Type)}
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, &ResolutionError{Reason: "parse PKIX public key", Cause: err}
	}
	return NewHandle(key)
}
