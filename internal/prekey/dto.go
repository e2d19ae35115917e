package prekey

import (
	"time"
)

// NOTE: commands travel from the transport to the usecase, DTOs travel back.
// Keys and signatures are standard base64 on both sides.

// Input commands
type CreateIdentityKeyCommand struct {
	PublicKey string
}

type UploadSignedPreKeyCommand struct {
	KeyID     uint32
	PublicKey string
	Signature string     // XEdDSA by the identity key over the raw public key
	ExpiresAt *time.Time // defaults to now + configured TTL
}

type RotateSignedPreKeyCommand struct {
	OldKeyID *uint32 // a missing old key is tolerated
	UploadSignedPreKeyCommand
}

type OneTimePreKeyUpload struct {
	KeyID     uint32
	PublicKey string
}

type UploadOneTimePreKeysCommand struct {
	Keys []OneTimePreKeyUpload
}

// Output DTOs
type IdentityKeyDTO struct {
	ID        int64     `json:"id"`
	PublicKey string    `json:"public_key"`
	CreatedAt time.Time `json:"created_at"`
}

type SignedPreKeyDTO struct {
	KeyID     uint32     `json:"key_id"`
	PublicKey string     `json:"public_key"`
	Signature string     `json:"signature"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type OneTimePreKeyDTO struct {
	KeyID     uint32 `json:"key_id"`
	PublicKey string `json:"public_key"`
}

type OneTimePreKeyCountDTO struct {
	Total  int `json:"total"`
	Unused int `json:"unused"`
}

// NeedsReplenish is a convenience for publishers; the threshold is theirs.
func (c OneTimePreKeyCountDTO) NeedsReplenish(threshold int) bool {
	return c.Unused < threshold
}

type KeyBundleDTO struct {
	IdentityKey   string            `json:"identity_key"`
	SignedPreKey  SignedPreKeyDTO   `json:"signed_pre_key"`
	OneTimePreKey *OneTimePreKeyDTO `json:"one_time_pre_key,omitempty"` // nil when none was available or requested
}

type KeyStatusDTO struct {
	HasIdentityKey bool `json:"has_identity_key"`

	SignedPreKeysTotal   int `json:"signed_pre_keys_total"`
	SignedPreKeysValid   int `json:"signed_pre_keys_valid"`
	SignedPreKeysExpired int `json:"signed_pre_keys_expired"`

	OneTimePreKeysTotal  int `json:"one_time_pre_keys_total"`
	OneTimePreKeysUnused int `json:"one_time_pre_keys_unused"`
	OneTimePreKeysUsed   int `json:"one_time_pre_keys_used"`
}
