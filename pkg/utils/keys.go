package utils

import (
	"io"

	"golang.org/x/crypto/curve25519"
)

// GenerateX25519KeyPair reads a private key from rand and derives its public
// key. The private key is returned unclamped; X25519 and XEdDSA clamp it.
func GenerateX25519KeyPair(rand io.Reader) (priv, pub []byte, err error) {
	priv = make([]byte, curve25519.ScalarSize)
	if _, err = io.ReadFull(rand, priv); err != nil {
		return nil, nil, err
	}
	pub, err = curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return nil, nil, err
	}
	return priv, pub, nil
}

// SignPreKey produces the XEdDSA signature a publisher attaches to a signed
// prekey.
func SignPreKey(identityPrivate, prekeyPublic []byte, rand io.Reader) ([]byte, error) {
	random := make([]byte, 64)
	if _, err := io.ReadFull(rand, random); err != nil {
		return nil, err
	}
	return SignXEdDSA(identityPrivate, prekeyPublic, random)
}
