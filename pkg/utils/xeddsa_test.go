package utils

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSignedPreKey(t *testing.T) (identityPub, prekeyPub, sig []byte) {
	t.Helper()
	identityPriv, identityPub, err := GenerateX25519KeyPair(rand.Reader)
	require.NoError(t, err)
	_, prekeyPub, err = GenerateX25519KeyPair(rand.Reader)
	require.NoError(t, err)
	sig, err = SignPreKey(identityPriv, prekeyPub, rand.Reader)
	require.NoError(t, err)
	return identityPub, prekeyPub, sig
}

func TestXEdDSA_SignVerify(t *testing.T) {
	for i := 0; i < 16; i++ {
		identityPub, prekeyPub, sig := newSignedPreKey(t)
		require.Len(t, sig, SignatureSize)
		assert.True(t, VerifySignedPreKeySignature(prekeyPub, sig, identityPub))
	}
}

func TestXEdDSA_Rejects(t *testing.T) {
	identityPub, prekeyPub, sig := newSignedPreKey(t)

	t.Run("tampered message", func(t *testing.T) {
		msg := append([]byte(nil), prekeyPub...)
		msg[0] ^= 0x01
		assert.False(t, VerifySignedPreKeySignature(msg, sig, identityPub))
	})

	t.Run("tampered signature", func(t *testing.T) {
		bad := append([]byte(nil), sig...)
		bad[5] ^= 0x80
		assert.False(t, VerifySignedPreKeySignature(prekeyPub, bad, identityPub))
	})

	t.Run("wrong identity key", func(t *testing.T) {
		_, other, err := GenerateX25519KeyPair(rand.Reader)
		require.NoError(t, err)
		assert.False(t, VerifySignedPreKeySignature(prekeyPub, sig, other))
	})

	t.Run("length only placeholder is not enough", func(t *testing.T) {
		assert.False(t, VerifySignedPreKeySignature(prekeyPub, make([]byte, 64), identityPub))
	})

	t.Run("wrong lengths", func(t *testing.T) {
		assert.False(t, VerifySignedPreKeySignature(prekeyPub, sig[:32], identityPub))
		assert.False(t, VerifySignedPreKeySignature(prekeyPub[:31], sig, identityPub))
		assert.False(t, VerifySignedPreKeySignature(prekeyPub, sig, identityPub[:16]))
	})

	t.Run("non canonical public key", func(t *testing.T) {
		pub := append([]byte(nil), identityPub...)
		pub[31] |= 0x80
		assert.False(t, VerifySignedPreKeySignature(prekeyPub, sig, pub))
	})

	t.Run("high bits in s", func(t *testing.T) {
		bad := append([]byte(nil), sig...)
		bad[63] |= 0x40
		assert.False(t, VerifySignedPreKeySignature(prekeyPub, bad, identityPub))
	})
}

func TestSignXEdDSA_BadInput(t *testing.T) {
	_, err := SignXEdDSA(make([]byte, 31), []byte("m"), make([]byte, 64))
	assert.Error(t, err)
	_, err = SignXEdDSA(make([]byte, 32), []byte("m"), make([]byte, 10))
	assert.Error(t, err)
}
