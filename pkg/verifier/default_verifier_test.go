package verifier

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/digest"
	"github.com/media-net/ads-cert-openrtb3-verifier/pkg/keys"
)

func testDigest() digest.Digest {
	return digest.Digest(sha256.Sum256([]byte("domain=newsite.com&ft=d&tid=ab101")))
}

func TestDefaultVerifier_Verify_Ed25519RoundTrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	handle, err := keys.NewHandle(pub)
	require.NoError(t, err)

	d := testDigest()
	sig := base64.StdEncoding.EncodeToString(ed25519.Sign(priv, d[:]))

	ok, err := NewDefaultVerifier().Verify(handle, d, sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDefaultVerifier_Verify_ECDSARoundTrip(t *testing.T) {
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	handle, err := keys.NewHandle(&priv.PublicKey)
	require.NoError(t, err)

	d := testDigest()
	raw, err := ecdsa.SignASN1(rand.Reader, priv, d[:])
	require.NoError(t, err)
	sig := base64.StdEncoding.EncodeToString(raw)

	ok, err := NewDefaultVerifier().Verify(handle, d, sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDefaultVerifier_Verify_RSAPSSRoundTrip(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	handle, err := keys.NewHandle(&priv.PublicKey)
	require.NoError(t, err)

	d := testDigest()
	raw, err := rsa.SignPSS(rand.Reader, priv, crypto.SHA256, d[:], nil)
	require.NoError(t, err)
	sig := base64.StdEncoding.EncodeToString(raw)

	ok, err := NewDefaultVerifier().Verify(handle, d, sig)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDefaultVerifier_Verify_TamperedDigest(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	handle, err := keys.NewHandle(pub)
	require.NoError(t, err)

	d := testDigest()
	sig := base64.StdEncoding.EncodeToString(ed25519.Sign(priv, d[:]))

	// Flip one byte of the digest.
	d[0] ^= 0x01

	ok, err := NewDefaultVerifier().Verify(handle, d, sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDefaultVerifier_Verify_TamperedSignature(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	handle, err := keys.NewHandle(pub)
	require.NoError(t, err)

	d := testDigest()
	raw := ed25519.Sign(priv, d[:])
	raw[0] ^= 0x01
	sig := base64.StdEncoding.EncodeToString(raw)

	ok, err := NewDefaultVerifier().Verify(handle, d, sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDefaultVerifier_Verify_WrongKey(t *testing.T) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	otherPub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	handle, err := keys.NewHandle(otherPub)
	require.NoError(t, err)

	d := testDigest()
	sig := base64.StdEncoding.EncodeToString(ed25519.Sign(priv, d[:]))

	ok, err := NewDefaultVerifier().Verify(handle, d, sig)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDefaultVerifier_Verify_UndecodableSignature(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	handle, err := keys.NewHandle(pub)
	require.NoError(t, err)

	ok, err := NewDefaultVerifier().Verify(handle, testDigest(), "!!!not-base64!!!")
	require.Error(t, err)
	assert.False(t, ok)

	var fe *FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestDefaultVerifier_Verify_WrongLengthEd25519(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	handle, err := keys.NewHandle(pub)
	require.NoError(t, err)

	short := base64.StdEncoding.EncodeToString([]byte("short"))
	ok, err := NewDefaultVerifier().Verify(handle, testDigest(), short)
	require.Error(t, err)
	assert.False(t, ok)

	var fe *FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestDefaultVerifier_Verify_EmptySignature(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	handle, err := keys.NewHandle(pub)
	require.NoError(t, err)

	ok, err := NewDefaultVerifier().Verify(handle, testDigest(), "")
	require.Error(t, err)
	assert.False(t, ok)

	var fe *FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestDefaultVerifier_Verify_NilKey(t *testing.T) {
	ok, err := NewDefaultVerifier().Verify(nil, testDigest(), "Zm9v")
	require.Error(t, err)
	assert.False(t, ok)
}
