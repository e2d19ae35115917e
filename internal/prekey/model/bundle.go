package models

import (
	"github.com/google/uuid"
)

// KeyBundle is assembled per request and never stored.
type KeyBundle struct {
	UserID        uuid.UUID
	IdentityKey   []byte
	SignedPreKey  SignedPreKey
	OneTimePreKey *OneTimePreKey // nil when not requested or the pool is empty
}

type SignedPreKeyCounts struct {
	Total   int
	Valid   int
	Expired int
}

type OneTimePreKeyCounts struct {
	Total  int
	Unused int
}

func (c OneTimePreKeyCounts) Used() int {
	return c.Total - c.Unused
}

type KeyStatus struct {
	HasIdentityKey bool
	SignedPreKeys  SignedPreKeyCounts
	OneTimePreKeys OneTimePreKeyCounts
}
