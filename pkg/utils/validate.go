package utils

import (
	"encoding/base64"
	"fmt"
)

const (
	// PublicKeySize is the size of an X25519 public key.
	PublicKeySize = 32
	// SignatureSize is the size of an XEdDSA signature.
	SignatureSize = 64
)

// DecodeKey decodes standard base64 and checks the decoded length.
func DecodeKey(b64 string, expectedLen int) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, err
	}
	if len(data) != expectedLen {
		return nil, fmt.Errorf("expected %d bytes, got %d", expectedLen, len(data))
	}
	return data, nil
}

func EncodeKey(raw []byte) string {
	return base64.StdEncoding.EncodeToString(raw)
}

func IsValidPublicKey(b64 string) bool {
	_, err := DecodeKey(b64, PublicKeySize)
	return err == nil
}

func IsValidSignature(b64 string) bool {
	_, err := DecodeKey(b64, SignatureSize)
	return err == nil
}

// VerifySignedPreKeySignature checks that signature is an XEdDSA signature
// over the raw prekey public key made with the identity key.
func VerifySignedPreKeySignature(prekeyPublicKey, signature, identityPublicKey []byte) bool {
	if len(prekeyPublicKey) != PublicKeySize {
		return false
	}
	return VerifyXEdDSA(identityPublicKey, prekeyPublicKey, signature)
}
