// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	oed25519 "github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
)

var oed25519options = &oed25519.Options{
	Verify: oed25519.VerifyOptionsZIP_215,
}

func testDigest(t *testing.T) []byte {
	t.Helper()
	digest := make([]byte, DigestLen)
	_, err := rand.Read(digest)
	require.NoError(t, err)
	return digest
}

func TestGeneratePrivateKeyFormat(t *testing.T) {
	require := require.New(t)
	priv, err := GeneratePrivateKey()
	require.NoError(err, "Error Generating PrivateKey")
	require.NotEqual(priv, EmptyPrivateKey, "PrivateKey is empty")
	require.Len(priv, PrivateKeyLen, "PrivateKey has incorrect length")
}

func TestGeneratePrivateKeyDifferent(t *testing.T) {
	require := require.New(t)
	const numKeysToGenerate int = 10
	pks := [numKeysToGenerate]PrivateKey{}

	// generate keys
	for i := 0; i < numKeysToGenerate; i++ {
		priv, err := GeneratePrivateKey()
		pks[i] = priv
		require.NoError(err, "Error Generating Private Key")
	}

	// make sure keys are different
	m := make(map[PrivateKey]bool)
	for _, priv := range pks {
		require.False(m[priv], "Duplicate PrivateKey generated")
		m[priv] = true
	}
}

func TestPublicKeyMatchesStdlib(t *testing.T) {
	require := require.New(t)

	priv, err := GeneratePrivateKey()
	require.NoError(err)

	expected := ed25519.PrivateKey(priv[:]).Public().(ed25519.PublicKey)
	pub := priv.PublicKey()
	require.Equal([]byte(expected), pub[:])
}

func TestSignMatchesStdlib(t *testing.T) {
	require := require.New(t)

	priv, err := GeneratePrivateKey()
	require.NoError(err)
	digest := testDigest(t)

	sig, err := Sign(digest, priv)
	require.NoError(err)
	require.Equal(ed25519.Sign(priv[:], digest), sig[:],
		"Signature was incorrect")
}

func TestSignRejectsNonDigestMessages(t *testing.T) {
	require := require.New(t)

	priv, err := GeneratePrivateKey()
	require.NoError(err)

	for _, size := range []int{0, 16, 31, 33, 64} {
		_, err := Sign(make([]byte, size), priv)
		require.ErrorIs(err, ErrInvalidDigest, "signed a %d-byte message", size)
	}
}

func TestVerifyValidDigest(t *testing.T) {
	require := require.New(t)

	priv, err := GeneratePrivateKey()
	require.NoError(err)
	digest := testDigest(t)

	sig, err := Sign(digest, priv)
	require.NoError(err)
	require.True(Verify(digest, priv.PublicKey(), sig),
		"Signature was invalid")
}

func TestVerifyWrongDigest(t *testing.T) {
	require := require.New(t)

	priv, err := GeneratePrivateKey()
	require.NoError(err)
	digest := testDigest(t)

	sig, err := Sign(digest, priv)
	require.NoError(err)

	other := testDigest(t)
	require.False(Verify(other, priv.PublicKey(), sig),
		"Verify incorrectly verified a digest")
}

func TestVerifyWrongSizeDigestIsFalse(t *testing.T) {
	require := require.New(t)

	priv, err := GeneratePrivateKey()
	require.NoError(err)
	digest := testDigest(t)

	sig, err := Sign(digest, priv)
	require.NoError(err)

	require.False(Verify(digest[:31], priv.PublicKey(), sig))
	require.False(Verify(nil, priv.PublicKey(), sig))
	require.False(Verify(append(digest, 0x00), priv.PublicKey(), sig))
}

func TestVerifyAgreesWithOasis(t *testing.T) {
	require := require.New(t)

	priv, err := GeneratePrivateKey()
	require.NoError(err)
	digest := testDigest(t)

	sig, err := Sign(digest, priv)
	require.NoError(err)
	pub := priv.PublicKey()

	require.True(Verify(digest, pub, sig))
	require.True(oed25519.VerifyWithOptions(pub[:], digest, sig[:], oed25519options),
		"oasis rejected a signature we accept")
}

func TestBatchAddVerifyValid(t *testing.T) {
	require := require.New(t)
	const numItems = 128

	bv := NewBatch(numItems)
	for i := 0; i < numItems; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err)
		digest := testDigest(t)
		sig, err := Sign(digest, priv)
		require.NoError(err)
		bv.Add(digest, priv.PublicKey(), sig)
	}
	require.True(bv.Verify(), "invalid signature")
}

func TestBatchAddVerifyInvalid(t *testing.T) {
	require := require.New(t)
	const numItems = 128

	bv := NewBatch(numItems)
	for i := 0; i < numItems; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err)
		digest := testDigest(t)
		sig, err := Sign(digest, priv)
		require.NoError(err)
		if i == 10 {
			sig[0]++
		}
		bv.Add(digest, priv.PublicKey(), sig)
	}
	require.False(bv.Verify(), "valid signature")
}

func TestBatchPoisonedByBadDigest(t *testing.T) {
	require := require.New(t)

	priv, err := GeneratePrivateKey()
	require.NoError(err)
	digest := testDigest(t)
	sig, err := Sign(digest, priv)
	require.NoError(err)

	bv := NewBatch(2)
	bv.Add(digest, priv.PublicKey(), sig)
	bv.Add(digest[:16], priv.PublicKey(), sig)
	require.False(bv.Verify(), "batch with a malformed digest verified")
}

func BenchmarkVerifyDigest(b *testing.B) {
	require := require.New(b)
	b.StopTimer()
	priv, err := GeneratePrivateKey()
	require.NoError(err)
	digest := make([]byte, DigestLen)
	_, err = rand.Read(digest)
	require.NoError(err)
	sig, err := Sign(digest, priv)
	require.NoError(err)
	pub := priv.PublicKey()
	b.StartTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		require.True(Verify(digest, pub, sig), "invalid signature")
	}
}
