package prekey

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "keybroker/internal/prekey/model"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks keybroker/internal/prekey PrekeyRepository

// PrekeyRepository is the transactional store behind the broker. Every
// mutating method is atomic: it either fully applies or leaves no trace.
type PrekeyRepository interface {
	CreateIdentityKey(ctx context.Context, key *models.IdentityKey) error
	GetIdentityKey(ctx context.Context, userID uuid.UUID) (*models.IdentityKey, error)

	InsertSignedPreKey(ctx context.Context, spk *models.SignedPreKey) error
	// Retires oldKeyID (if set and present) and inserts spk in one transaction.
	// retired reports whether a row was actually retired.
	RotateSignedPreKey(ctx context.Context, userID uuid.UUID, oldKeyID *uint32, spk *models.SignedPreKey) (retired bool, err error)
	GetCurrentSignedPreKey(ctx context.Context, userID uuid.UUID, now time.Time) (*models.SignedPreKey, error)
	DeleteExpiredSignedPreKeys(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)

	InsertOneTimePreKeys(ctx context.Context, keys []models.OneTimePreKey) error
	// Atomically claims the oldest unused key. Returns nil, nil on an empty pool.
	ConsumeOneTimePreKey(ctx context.Context, userID uuid.UUID, now time.Time) (*models.OneTimePreKey, error)
	MarkOneTimePreKeyUsed(ctx context.Context, userID uuid.UUID, keyID uint32, now time.Time) error
	CountOneTimePreKeys(ctx context.Context, userID uuid.UUID) (models.OneTimePreKeyCounts, error)

	// Returns everything needed for X3DH in one transaction
	FetchKeyBundle(ctx context.Context, userID uuid.UUID, includeOneTimeKey bool, now time.Time) (*models.KeyBundle, error)
	GetKeyStatus(ctx context.Context, userID uuid.UUID, now time.Time) (*models.KeyStatus, error)
}
