package utils

import (
	"bytes"
	"crypto/sha512"
	"crypto/subtle"
	"errors"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

// XEdDSA lets a Curve25519 (X25519) key pair produce and check EdDSA
// signatures: https://signal.org/docs/specifications/xeddsa/

// hash1 prefix: 2^256 - 2 in little endian.
var hash1Prefix = append([]byte{0xfe}, bytes.Repeat([]byte{0xff}, 31)...)

var errInvalidPrivateKey = errors.New("xeddsa: private key must be 32 bytes")

// VerifyXEdDSA verifies signature over message under the Montgomery public
// key. The sign bit of the Edwards key is taken from the top bit of the last
// signature byte; signers following the XEdDSA paper always leave it clear.
func VerifyXEdDSA(publicKey, message, signature []byte) bool {
	if len(publicKey) != PublicKeySize || len(signature) != SignatureSize {
		return false
	}

	u, err := new(field.Element).SetBytes(publicKey)
	if err != nil {
		return false
	}
	// u must be canonical (u < p).
	if !bytes.Equal(u.Bytes(), publicKey) {
		return false
	}

	signBit := signature[63] >> 7
	A, err := montgomeryToEdwards(u, signBit)
	if err != nil {
		return false
	}

	sBytes := make([]byte, 32)
	copy(sBytes, signature[32:])
	sBytes[31] &= 0x7f
	if sBytes[31]&0xe0 != 0 {
		return false
	}
	s, err := edwards25519.NewScalar().SetCanonicalBytes(sBytes)
	if err != nil {
		return false
	}

	R := signature[:32]
	h := sha512.New()
	h.Write(R)
	h.Write(A.Bytes())
	h.Write(message)
	k, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return false
	}

	minusA := new(edwards25519.Point).Negate(A)
	check := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(k, minusA, s)
	return subtle.ConstantTimeCompare(check.Bytes(), R) == 1
}

// SignXEdDSA signs message with an X25519 private key. random must be 64
// bytes of fresh randomness.
func SignXEdDSA(privateKey, message, random []byte) ([]byte, error) {
	if len(privateKey) != 32 {
		return nil, errInvalidPrivateKey
	}
	if len(random) != 64 {
		return nil, errors.New("xeddsa: random must be 64 bytes")
	}

	a, A, err := calculateKeyPair(privateKey)
	if err != nil {
		return nil, err
	}

	h := sha512.New()
	h.Write(hash1Prefix)
	h.Write(a.Bytes())
	h.Write(message)
	h.Write(random)
	r, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return nil, err
	}
	R := new(edwards25519.Point).ScalarBaseMult(r).Bytes()

	h.Reset()
	h.Write(R)
	h.Write(A)
	h.Write(message)
	k, err := edwards25519.NewScalar().SetUniformBytes(h.Sum(nil))
	if err != nil {
		return nil, err
	}
	s := edwards25519.NewScalar().MultiplyAdd(k, a, r)

	sig := make([]byte, 0, SignatureSize)
	sig = append(sig, R...)
	sig = append(sig, s.Bytes()...)
	return sig, nil
}

// calculateKeyPair returns the Edwards private scalar and the encoded Edwards
// public key with its sign bit forced to zero.
func calculateKeyPair(privateKey []byte) (*edwards25519.Scalar, []byte, error) {
	k, err := edwards25519.NewScalar().SetBytesWithClamping(privateKey)
	if err != nil {
		return nil, nil, err
	}
	E := new(edwards25519.Point).ScalarBaseMult(k).Bytes()
	if E[31]&0x80 != 0 {
		k = edwards25519.NewScalar().Negate(k)
		E[31] &= 0x7f
	}
	return k, E, nil
}

// montgomeryToEdwards maps u to the Edwards point with y = (u-1)/(u+1).
func montgomeryToEdwards(u *field.Element, signBit byte) (*edwards25519.Point, error) {
	one := new(field.Element).One()
	num := new(field.Element).Subtract(u, one)
	den := new(field.Element).Add(u, one)
	y := new(field.Element).Multiply(num, new(field.Element).Invert(den))

	yBytes := y.Bytes()
	yBytes[31] |= signBit << 7
	return new(edwards25519.Point).SetBytes(yBytes)
}
