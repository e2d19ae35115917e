package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type OneTimePreKey struct {
	bun.BaseModel `bun:"table:one_time_pre_keys,alias:otpk"`

	ID     int64     `bun:",pk,autoincrement"`
	UserID uuid.UUID `bun:",notnull,type:uuid,unique:one_time_pre_keys_user_key"`
	KeyID  uint32    `bun:",notnull,type:bigint,unique:one_time_pre_keys_user_key"`

	PublicKey []byte    `bun:",notnull"` // 32 bytes Curve25519
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Used is terminal; UsedAt is set in the same write.
	Used   bool       `bun:",notnull,default:false"`
	UsedAt *time.Time `bun:",nullzero"`
}

// UsedOneTimePreKey is the append-only consumption ledger. One row is written
// in the same transaction as every unused -> used transition.
type UsedOneTimePreKey struct {
	bun.BaseModel `bun:"table:used_one_time_pre_keys,alias:uotpk"`

	ID         int64     `bun:",pk,autoincrement"`
	UserID     uuid.UUID `bun:",notnull,type:uuid"`
	KeyID      uint32    `bun:",notnull,type:bigint"`
	ConsumedAt time.Time `bun:",notnull"`
}
