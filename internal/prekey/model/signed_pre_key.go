package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type SignedPreKey struct {
	bun.BaseModel `bun:"table:signed_pre_keys,alias:spk"`

	ID     int64     `bun:",pk,autoincrement"`
	UserID uuid.UUID `bun:",notnull,type:uuid,unique:signed_pre_keys_user_key"`
	KeyID  uint32    `bun:",notnull,type:bigint,unique:signed_pre_keys_user_key"` // client-chosen

	PublicKey []byte `bun:",notnull"` // 32 bytes Curve25519
	Signature []byte `bun:",notnull"` // 64 bytes XEdDSA by the identity key

	CreatedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	ExpiresAt *time.Time `bun:",nullzero"`
	// Retired keys stay readable until cleanup so in-flight handshakes finish.
	Retired bool `bun:",notnull,default:false"`
}

// IsCurrent reports whether the key may be handed out at now.
func (k *SignedPreKey) IsCurrent(now time.Time) bool {
	return !k.Retired && !k.IsExpired(now)
}

func (k *SignedPreKey) IsExpired(now time.Time) bool {
	return k.ExpiresAt != nil && !k.ExpiresAt.After(now)
}
