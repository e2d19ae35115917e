package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// IdentityKey is the user's long-term X25519 public key. It is written once
// and never updated.
type IdentityKey struct {
	bun.BaseModel `bun:"table:identity_keys,alias:ik"`

	ID     int64     `bun:",pk,autoincrement"`
	UserID uuid.UUID `bun:",notnull,unique,type:uuid"`

	PublicKey []byte    `bun:",notnull"` // 32 bytes Curve25519
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
