package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"keybroker/config"
	"keybroker/internal/metrics"
	"keybroker/internal/prekey"
	models "keybroker/internal/prekey/model"
	"keybroker/internal/prekey/repository"
	appErrors "keybroker/pkg/errors"
	"keybroker/pkg/logger"
	"keybroker/pkg/utils"
)

// MaxOneTimePreKeyBatch caps a single one-time prekey upload.
const MaxOneTimePreKeyBatch = 100

type PrekeyUsecase struct {
	repo    prekey.PrekeyRepository
	logger  logger.Logger
	config  config.Config
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ prekey.PrekeyUsecase = (*PrekeyUsecase)(nil)

func NewPrekeyUsecase(repo prekey.PrekeyRepository, logger logger.Logger, config config.Config, m *metrics.Metrics) *PrekeyUsecase {
	return &PrekeyUsecase{repo: repo, logger: logger, config: config, metrics: m, now: utcNow}
}

// Postgres keeps microseconds; truncating keeps round-tripped times equal.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (uc *PrekeyUsecase) clock() time.Time {
	if uc.now == nil {
		return utcNow()
	}
	return uc.now()
}

func (uc *PrekeyUsecase) signedPreKeyTTL() time.Duration {
	if uc.config.Prekeys.SignedPreKeyTTL > 0 {
		return uc.config.Prekeys.SignedPreKeyTTL
	}
	return config.DefaultSignedPreKeyTTL
}

func (uc *PrekeyUsecase) CreateIdentityKey(ctx context.Context, userID uuid.UUID, cmd prekey.CreateIdentityKeyCommand) (*prekey.IdentityKeyDTO, error) {
	if userID == uuid.Nil {
		return nil, appErrors.ErrInvalidUserID
	}
	pub, err := utils.DecodeKey(cmd.PublicKey, utils.PublicKeySize)
	if err != nil {
		return nil, appErrors.ErrInvalidIdentityKey
	}

	key := &models.IdentityKey{
		UserID:    userID,
		PublicKey: pub,
		CreatedAt: uc.clock(),
	}
	if err := uc.repo.CreateIdentityKey(ctx, key); err != nil {
		return nil, uc.storageError("CreateIdentityKey", err)
	}

	uc.logger.Info("identity key registered", "user_id", userID)
	return identityKeyDTO(key), nil
}

func (uc *PrekeyUsecase) GetIdentityKey(ctx context.Context, userID uuid.UUID) (*prekey.IdentityKeyDTO, error) {
	key, err := uc.repo.GetIdentityKey(ctx, userID)
	if err != nil {
		return nil, uc.storageError("GetIdentityKey", err)
	}
	return identityKeyDTO(key), nil
}

func (uc *PrekeyUsecase) UploadSignedPreKey(ctx context.Context, userID uuid.UUID, cmd prekey.UploadSignedPreKeyCommand) (*prekey.SignedPreKeyDTO, error) {
	spk, err := uc.newSignedPreKey(ctx, userID, cmd)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.InsertSignedPreKey(ctx, spk); err != nil {
		return nil, uc.storageError("UploadSignedPreKey", err)
	}

	uc.logger.Info("signed prekey uploaded", "user_id", userID, "key_id", spk.KeyID)
	return signedPreKeyDTO(spk), nil
}

func (uc *PrekeyUsecase) RotateSignedPreKey(ctx context.Context, userID uuid.UUID, cmd prekey.RotateSignedPreKeyCommand) (*prekey.SignedPreKeyDTO, error) {
	spk, err := uc.newSignedPreKey(ctx, userID, cmd.UploadSignedPreKeyCommand)
	if err != nil {
		return nil, err
	}

	retired, err := uc.repo.RotateSignedPreKey(ctx, userID, cmd.OldKeyID, spk)
	if err != nil {
		return nil, uc.storageError("RotateSignedPreKey", err)
	}
	if cmd.OldKeyID != nil && !retired {
		// Tolerated: the caller need not track old key ids precisely.
		uc.logger.Warn("signed prekey rotated without retiring old key",
			"user_id", userID, "old_key_id", *cmd.OldKeyID, "new_key_id", spk.KeyID)
	} else {
		uc.logger.Info("signed prekey rotated", "user_id", userID, "new_key_id", spk.KeyID)
	}
	return signedPreKeyDTO(spk), nil
}

// newSignedPreKey validates an upload against the user's identity key.
func (uc *PrekeyUsecase) newSignedPreKey(ctx context.Context, userID uuid.UUID, cmd prekey.UploadSignedPreKeyCommand) (*models.SignedPreKey, error) {
	if userID == uuid.Nil {
		return nil, appErrors.ErrInvalidUserID
	}
	ik, err := uc.repo.GetIdentityKey(ctx, userID)
	if err != nil {
		return nil, uc.storageError("GetIdentityKey", err)
	}

	pub, err := utils.DecodeKey(cmd.PublicKey, utils.PublicKeySize)
	if err != nil {
		return nil, appErrors.ErrInvalidSignedPreKey
	}
	sig, err := utils.DecodeKey(cmd.Signature, utils.SignatureSize)
	if err != nil {
		return nil, appErrors.ErrInvalidSignedPreKeySignature
	}
	if !utils.VerifySignedPreKeySignature(pub, sig, ik.PublicKey) {
		uc.logger.Warn("signed prekey signature rejected", "user_id", userID, "key_id", cmd.KeyID)
		return nil, appErrors.ErrSignedPreKeySignatureInvalid
	}

	now := uc.clock()
	expiresAt := now.Add(uc.signedPreKeyTTL())
	if cmd.ExpiresAt != nil {
		if !cmd.ExpiresAt.After(now) {
			return nil, appErrors.ErrInvalidExpiry
		}
		expiresAt = cmd.ExpiresAt.UTC()
	}

	return &models.SignedPreKey{
		UserID:    userID,
		KeyID:     cmd.KeyID,
		PublicKey: pub,
		Signature: sig,
		CreatedAt: now,
		ExpiresAt: &expiresAt,
	}, nil
}

func (uc *PrekeyUsecase) GetCurrentSignedPreKey(ctx context.Context, userID uuid.UUID) (*prekey.SignedPreKeyDTO, error) {
	spk, err := uc.repo.GetCurrentSignedPreKey(ctx, userID, uc.clock())
	if err != nil {
		return nil, uc.storageError("GetCurrentSignedPreKey", err)
	}
	return signedPreKeyDTO(spk), nil
}

func (uc *PrekeyUsecase) CleanupExpiredSignedPreKeys(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := uc.repo.DeleteExpiredSignedPreKeys(ctx, userID, uc.clock())
	if err != nil {
		return 0, uc.storageError("CleanupExpiredSignedPreKeys", err)
	}
	if n > 0 {
		uc.logger.Info("expired signed prekeys deleted", "user_id", userID, "count", n)
	}
	return n, nil
}

func (uc *PrekeyUsecase) UploadOneTimePreKeys(ctx context.Context, userID uuid.UUID, cmd prekey.UploadOneTimePreKeysCommand) error {
	if userID == uuid.Nil {
		return appErrors.ErrInvalidUserID
	}
	switch {
	case len(cmd.Keys) == 0:
		return appErrors.ErrOneTimePreKeyBatchEmpty
	case len(cmd.Keys) > MaxOneTimePreKeyBatch:
		return appErrors.ErrOneTimePreKeyBatchTooLarge
	}

	now := uc.clock()
	otpkList := make([]models.OneTimePreKey, 0, len(cmd.Keys))
	seenKeyIDs := make(map[uint32]bool, len(cmd.Keys))
	for _, k := range cmd.Keys {
		if seenKeyIDs[k.KeyID] {
			return appErrors.ErrDuplicateOneTimePreKeyID
		}
		seenKeyIDs[k.KeyID] = true
	}
	for _, k := range cmd.Keys {
		pub, err := utils.DecodeKey(k.PublicKey, utils.PublicKeySize)
		if err != nil {
			return appErrors.ErrInvalidOneTimePreKey
		}
		otpkList = append(otpkList, models.OneTimePreKey{
			UserID:    userID,
			KeyID:     k.KeyID,
			PublicKey: pub,
			CreatedAt: now,
		})
	}

	if err := uc.repo.InsertOneTimePreKeys(ctx, otpkList); err != nil {
		return uc.storageError("UploadOneTimePreKeys", err)
	}
	uc.logger.Info("one-time prekeys uploaded", "user_id", userID, "count", len(otpkList))
	return nil
}

func (uc *PrekeyUsecase) ConsumeOneTimePreKey(ctx context.Context, userID uuid.UUID) (*prekey.OneTimePreKeyDTO, error) {
	key, err := uc.repo.ConsumeOneTimePreKey(ctx, userID, uc.clock())
	if err != nil {
		return nil, uc.storageError("ConsumeOneTimePreKey", err)
	}
	if key == nil {
		uc.poolExhausted(userID)
		return nil, nil
	}
	uc.consumed(metrics.SourceConsume, userID, key.KeyID)
	return oneTimePreKeyDTO(key), nil
}

func (uc *PrekeyUsecase) MarkOneTimePreKeyUsed(ctx context.Context, userID uuid.UUID, keyID uint32) error {
	if err := uc.repo.MarkOneTimePreKeyUsed(ctx, userID, keyID, uc.clock()); err != nil {
		return uc.storageError("MarkOneTimePreKeyUsed", err)
	}
	uc.consumed(metrics.SourceExplicit, userID, keyID)
	return nil
}

func (uc *PrekeyUsecase) GetOneTimePreKeyCount(ctx context.Context, userID uuid.UUID) (*prekey.OneTimePreKeyCountDTO, error) {
	counts, err := uc.repo.CountOneTimePreKeys(ctx, userID)
	if err != nil {
		return nil, uc.storageError("GetOneTimePreKeyCount", err)
	}
	return &prekey.OneTimePreKeyCountDTO{Total: counts.Total, Unused: counts.Unused}, nil
}

func (uc *PrekeyUsecase) GetKeyBundle(ctx context.Context, userID uuid.UUID, includeOneTimeKey bool) (*prekey.KeyBundleDTO, error) {
	bundle, err := uc.repo.FetchKeyBundle(ctx, userID, includeOneTimeKey, uc.clock())
	if err != nil {
		return nil, uc.storageError("GetKeyBundle", err)
	}

	dto := &prekey.KeyBundleDTO{
		IdentityKey:  utils.EncodeKey(bundle.IdentityKey),
		SignedPreKey: *signedPreKeyDTO(&bundle.SignedPreKey),
	}
	if bundle.OneTimePreKey != nil {
		dto.OneTimePreKey = oneTimePreKeyDTO(bundle.OneTimePreKey)
		uc.consumed(metrics.SourceBundle, userID, bundle.OneTimePreKey.KeyID)
	} else if includeOneTimeKey {
		uc.poolExhausted(userID)
	}
	if uc.metrics != nil {
		uc.metrics.BundleServed(dto.OneTimePreKey != nil)
	}
	return dto, nil
}

func (uc *PrekeyUsecase) GetKeyStatus(ctx context.Context, userID uuid.UUID) (*prekey.KeyStatusDTO, error) {
	status, err := uc.repo.GetKeyStatus(ctx, userID, uc.clock())
	if err != nil {
		return nil, uc.storageError("GetKeyStatus", err)
	}
	return &prekey.KeyStatusDTO{
		HasIdentityKey:       status.HasIdentityKey,
		SignedPreKeysTotal:   status.SignedPreKeys.Total,
		SignedPreKeysValid:   status.SignedPreKeys.Valid,
		SignedPreKeysExpired: status.SignedPreKeys.Expired,
		OneTimePreKeysTotal:  status.OneTimePreKeys.Total,
		OneTimePreKeysUnused: status.OneTimePreKeys.Unused,
		OneTimePreKeysUsed:   status.OneTimePreKeys.Used(),
	}, nil
}

func (uc *PrekeyUsecase) consumed(source string, userID uuid.UUID, keyID uint32) {
	if uc.metrics != nil {
		uc.metrics.Consumed(source)
	}
	uc.logger.Debug("one-time prekey consumed", "user_id", userID, "key_id", keyID, "source", source)
}

func (uc *PrekeyUsecase) poolExhausted(userID uuid.UUID) {
	if uc.metrics != nil {
		uc.metrics.PoolExhausted.Inc()
	}
	uc.logger.Warn("one-time prekey pool exhausted", "user_id", userID)
}

// storageError maps repository failures onto application errors. Only
// unexpected failures are logged; domain outcomes go back to the caller as is.
func (uc *PrekeyUsecase) storageError(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrIdentityKeyExists):
		return appErrors.ErrIdentityKeyExists
	case errors.Is(err, repository.ErrIdentityKeyNotFound):
		return appErrors.ErrIdentityKeyNotFound
	case errors.Is(err, repository.ErrSignedPreKeyExists):
		return appErrors.ErrSignedPreKeyExists
	case errors.Is(err, repository.ErrSignedPreKeyNotFound):
		return appErrors.ErrSignedPreKeyNotFound
	case errors.Is(err, repository.ErrOneTimePreKeyExists):
		return appErrors.ErrOneTimePreKeyExists
	case errors.Is(err, repository.ErrOneTimePreKeyNotFound):
		return appErrors.ErrOneTimePreKeyNotFound
	case errors.Is(err, repository.ErrOneTimePreKeyAlreadyUsed):
		return appErrors.ErrOneTimePreKeyAlreadyUsed
	case errors.Is(err, repository.ErrStorageUnavailable):
		uc.logger.Warn("transient storage failure", "op", op, "err", err)
		return appErrors.ErrStorageUnavailable(err)
	default:
		uc.logger.Errorf("%s: storage failure: %v", op, err)
		return appErrors.ErrStorageFailed(err)
	}
}

func identityKeyDTO(key *models.IdentityKey) *prekey.IdentityKeyDTO {
	return &prekey.IdentityKeyDTO{
		ID:        key.ID,
		PublicKey: utils.EncodeKey(key.PublicKey),
		CreatedAt: key.CreatedAt,
	}
}

func signedPreKeyDTO(spk *models.SignedPreKey) *prekey.SignedPreKeyDTO {
	return &prekey.SignedPreKeyDTO{
		KeyID:     spk.KeyID,
		PublicKey: utils.EncodeKey(spk.PublicKey),
		Signature: utils.EncodeKey(spk.Signature),
		CreatedAt: spk.CreatedAt,
		ExpiresAt: spk.ExpiresAt,
	}
}

func oneTimePreKeyDTO(key *models.OneTimePreKey) *prekey.OneTimePreKeyDTO {
	return &prekey.OneTimePreKeyDTO{
		KeyID:     key.KeyID,
		PublicKey: utils.EncodeKey(key.PublicKey),
	}
}
