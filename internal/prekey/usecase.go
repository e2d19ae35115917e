package prekey

import (
	"context"

	"github.com/google/uuid"
)

type PrekeyUsecase interface {
	// Identity keys are immutable: no update or delete.
	CreateIdentityKey(ctx context.Context, userID uuid.UUID, cmd CreateIdentityKeyCommand) (*IdentityKeyDTO, error)
	GetIdentityKey(ctx context.Context, userID uuid.UUID) (*IdentityKeyDTO, error)

	UploadSignedPreKey(ctx context.Context, userID uuid.UUID, cmd UploadSignedPreKeyCommand) (*SignedPreKeyDTO, error)
	RotateSignedPreKey(ctx context.Context, userID uuid.UUID, cmd RotateSignedPreKeyCommand) (*SignedPreKeyDTO, error)
	GetCurrentSignedPreKey(ctx context.Context, userID uuid.UUID) (*SignedPreKeyDTO, error)
	CleanupExpiredSignedPreKeys(ctx context.Context, userID uuid.UUID) (int, error)

	UploadOneTimePreKeys(ctx context.Context, userID uuid.UUID, cmd UploadOneTimePreKeysCommand) error
	// Returns nil, nil when the pool is empty.
	ConsumeOneTimePreKey(ctx context.Context, userID uuid.UUID) (*OneTimePreKeyDTO, error)
	MarkOneTimePreKeyUsed(ctx context.Context, userID uuid.UUID, keyID uint32) error
	GetOneTimePreKeyCount(ctx context.Context, userID uuid.UUID) (*OneTimePreKeyCountDTO, error)

	// Returns everything the initiator needs to perform X3DH
	GetKeyBundle(ctx context.Context, userID uuid.UUID, includeOneTimeKey bool) (*KeyBundleDTO, error)
	GetKeyStatus(ctx context.Context, userID uuid.UUID) (*KeyStatusDTO, error)
}
