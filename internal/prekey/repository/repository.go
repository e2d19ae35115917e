package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"keybroker/internal/metrics"
	"keybroker/internal/prekey"
	models "keybroker/internal/prekey/model"
	"keybroker/pkg/logger"
)

type PrekeyRepository struct {
	db      *bun.DB
	logger  *logger.Logger
	metrics *metrics.Metrics
}

var _ prekey.PrekeyRepository = (*PrekeyRepository)(nil)

func NewPrekeyRepository(db *bun.DB, logger logger.Logger, m *metrics.Metrics) *PrekeyRepository {
	return &PrekeyRepository{
		db:      db,
		logger:  &logger,
		metrics: m,
	}
}

func (r *PrekeyRepository) instrument(op string) func() time.Duration {
	if r.metrics == nil {
		return func() time.Duration { return 0 }
	}
	return r.metrics.Instrument(op)
}

func (r *PrekeyRepository) CreateIdentityKey(ctx context.Context, key *models.IdentityKey) error {
	defer r.instrument("create_identity_key")()

	_, err := r.db.NewInsert().Model(key).Returning("*").Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrIdentityKeyExists
		}
		return wrap(err, "prekeyRepo.CreateIdentityKey.Insert")
	}
	return nil
}

func (r *PrekeyRepository) GetIdentityKey(ctx context.Context, userID uuid.UUID) (*models.IdentityKey, error) {
	defer r.instrument("get_identity_key")()
	return identityKey(ctx, r.db, userID)
}

func identityKey(ctx context.Context, db bun.IDB, userID uuid.UUID) (*models.IdentityKey, error) {
	key := new(models.IdentityKey)
	err := db.NewSelect().Model(key).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrIdentityKeyNotFound
		}
		return nil, wrap(err, "prekeyRepo.GetIdentityKey.Scan")
	}
	return key, nil
}

func (r *PrekeyRepository) InsertSignedPreKey(ctx context.Context, spk *models.SignedPreKey) error {
	defer r.instrument("insert_signed_pre_key")()
	return insertSignedPreKey(ctx, r.db, spk)
}

func insertSignedPreKey(ctx context.Context, db bun.IDB, spk *models.SignedPreKey) error {
	_, err := db.NewInsert().Model(spk).Returning("*").Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSignedPreKeyExists
		}
		return wrap(err, "prekeyRepo.InsertSignedPreKey.Insert")
	}
	return nil
}

func (r *PrekeyRepository) RotateSignedPreKey(ctx context.Context, userID uuid.UUID, oldKeyID *uint32, spk *models.SignedPreKey) (bool, error) {
	defer r.instrument("rotate_signed_pre_key")()

	var retired bool
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if oldKeyID != nil {
			res, err := tx.NewUpdate().
				Model((*models.SignedPreKey)(nil)).
				Set("retired = TRUE").
				Where("user_id = ? AND key_id = ?", userID, *oldKeyID).
				Exec(ctx)
			if err != nil {
				return wrap(err, "prekeyRepo.RotateSignedPreKey.Retire")
			}
			n, err := res.RowsAffected()
			if err != nil {
				return wrap(err, "prekeyRepo.RotateSignedPreKey.RowsAffected")
			}
			retired = n > 0
		}
		return insertSignedPreKey(ctx, tx, spk)
	})
	if err != nil {
		return false, err
	}
	return retired, nil
}

func (r *PrekeyRepository) GetCurrentSignedPreKey(ctx context.Context, userID uuid.UUID, now time.Time) (*models.SignedPreKey, error) {
	defer r.instrument("get_current_signed_pre_key")()
	return currentSignedPreKey(ctx, r.db, userID, now)
}

// currentSignedPreKey picks the newest key that is neither retired nor
// expired at now.
func currentSignedPreKey(ctx context.Context, db bun.IDB, userID uuid.UUID, now time.Time) (*models.SignedPreKey, error) {
	key := new(models.SignedPreKey)
	err := db.NewSelect().
		Model(key).
		Where("user_id = ?", userID).
		Where("retired = FALSE").
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("expires_at IS NULL").WhereOr("expires_at > ?", now)
		}).
		OrderExpr("created_at DESC, id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSignedPreKeyNotFound
		}
		return nil, wrap(err, "prekeyRepo.GetCurrentSignedPreKey.Scan")
	}
	return key, nil
}

func (r *PrekeyRepository) DeleteExpiredSignedPreKeys(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	defer r.instrument("delete_expired_signed_pre_keys")()

	res, err := r.db.NewDelete().
		Model((*models.SignedPreKey)(nil)).
		Where("user_id = ?", userID).
		Where("expires_at < ?", now).
		Exec(ctx)
	if err != nil {
		return 0, wrap(err, "prekeyRepo.DeleteExpiredSignedPreKeys.Delete")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrap(err, "prekeyRepo.DeleteExpiredSignedPreKeys.RowsAffected")
	}
	return int(n), nil
}

// InsertOneTimePreKeys writes the batch as a single multi-row INSERT, so a
// conflict on any key id rejects all of them.
func (r *PrekeyRepository) InsertOneTimePreKeys(ctx context.Context, keys []models.OneTimePreKey) error {
	defer r.instrument("insert_one_time_pre_keys")()

	if len(keys) == 0 {
		return nil
	}
	_, err := r.db.NewInsert().Model(&keys).Returning("*").Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrOneTimePreKeyExists
		}
		return wrap(err, "prekeyRepo.InsertOneTimePreKeys.Insert")
	}
	return nil
}

func (r *PrekeyRepository) ConsumeOneTimePreKey(ctx context.Context, userID uuid.UUID, now time.Time) (*models.OneTimePreKey, error) {
	defer r.instrument("consume_one_time_pre_key")()

	var key *models.OneTimePreKey
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var err error
		key, err = consumeOneTimePreKey(ctx, tx, userID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	if key == nil {
		r.logger.Debug("one-time prekey pool empty", "user_id", userID)
	}
	return key, nil
}

// consumeOneTimePreKey selects and flips the oldest unused key in one
// statement. "FOR UPDATE SKIP LOCKED" makes concurrent callers pass over rows
// another transaction is claiming instead of waiting on them, and the
// used = FALSE guard on the UPDATE means a row can only be flipped once.
func consumeOneTimePreKey(ctx context.Context, tx bun.Tx, userID uuid.UUID, now time.Time) (*models.OneTimePreKey, error) {
	picked := tx.NewSelect().
		Model((*models.OneTimePreKey)(nil)).
		Column("id").
		Where("user_id = ?", userID).
		Where("used = FALSE").
		OrderExpr("created_at ASC, id ASC").
		Limit(1).
		For("UPDATE SKIP LOCKED")

	var consumed []models.OneTimePreKey
	_, err := tx.NewUpdate().
		With("picked", picked).
		Model((*models.OneTimePreKey)(nil)).
		TableExpr("picked").
		Set("used = TRUE").
		Set("used_at = ?", now).
		Where("otpk.id = picked.id").
		Where("otpk.used = FALSE").
		Returning("otpk.*").
		Exec(ctx, &consumed)
	if err != nil {
		return nil, wrap(err, "prekeyRepo.ConsumeOneTimePreKey.Update")
	}
	if len(consumed) == 0 {
		return nil, nil
	}

	key := &consumed[0]
	if err := appendLedger(ctx, tx, key.UserID, key.KeyID, now); err != nil {
		return nil, err
	}
	return key, nil
}

func appendLedger(ctx context.Context, tx bun.Tx, userID uuid.UUID, keyID uint32, now time.Time) error {
	entry := &models.UsedOneTimePreKey{
		UserID:     userID,
		KeyID:      keyID,
		ConsumedAt: now,
	}
	if _, err := tx.NewInsert().Model(entry).Exec(ctx); err != nil {
		return wrap(err, "prekeyRepo.appendLedger.Insert")
	}
	return nil
}

func (r *PrekeyRepository) MarkOneTimePreKeyUsed(ctx context.Context, userID uuid.UUID, keyID uint32, now time.Time) error {
	defer r.instrument("mark_one_time_pre_key_used")()

	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		key := new(models.OneTimePreKey)
		err := tx.NewSelect().
			Model(key).
			Where("user_id = ? AND key_id = ?", userID, keyID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrOneTimePreKeyNotFound
			}
			return wrap(err, "prekeyRepo.MarkOneTimePreKeyUsed.Select")
		}
		if key.Used {
			return ErrOneTimePreKeyAlreadyUsed
		}

		_, err = tx.NewUpdate().
			Model(key).
			Set("used = TRUE").
			Set("used_at = ?", now).
			WherePK().
			Exec(ctx)
		if err != nil {
			return wrap(err, "prekeyRepo.MarkOneTimePreKeyUsed.Update")
		}
		return appendLedger(ctx, tx, userID, keyID, now)
	})
}

func (r *PrekeyRepository) CountOneTimePreKeys(ctx context.Context, userID uuid.UUID) (models.OneTimePreKeyCounts, error) {
	defer r.instrument("count_one_time_pre_keys")()
	return countOneTimePreKeys(ctx, r.db, userID)
}

func countOneTimePreKeys(ctx context.Context, db bun.IDB, userID uuid.UUID) (models.OneTimePreKeyCounts, error) {
	var counts models.OneTimePreKeyCounts
	err := db.NewSelect().
		Model((*models.OneTimePreKey)(nil)).
		ColumnExpr("count(*)").
		ColumnExpr("count(*) FILTER (WHERE NOT used)").
		Where("user_id = ?", userID).
		Scan(ctx, &counts.Total, &counts.Unused)
	if err != nil {
		return models.OneTimePreKeyCounts{}, wrap(err, "prekeyRepo.CountOneTimePreKeys.Scan")
	}
	return counts, nil
}

func (r *PrekeyRepository) FetchKeyBundle(ctx context.Context, userID uuid.UUID, includeOneTimeKey bool, now time.Time) (*models.KeyBundle, error) {
	defer r.instrument("fetch_key_bundle")()

	var bundle models.KeyBundle
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		ik, err := identityKey(ctx, tx, userID)
		if err != nil {
			return err
		}
		spk, err := currentSignedPreKey(ctx, tx, userID, now)
		if err != nil {
			return err
		}

		bundle.UserID = userID
		bundle.IdentityKey = ik.PublicKey
		bundle.SignedPreKey = *spk

		if !includeOneTimeKey {
			return nil
		}
		otpk, err := consumeOneTimePreKey(ctx, tx, userID, now)
		if err != nil {
			return err
		}
		bundle.OneTimePreKey = otpk
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &bundle, nil
}

func (r *PrekeyRepository) GetKeyStatus(ctx context.Context, userID uuid.UUID, now time.Time) (*models.KeyStatus, error) {
	defer r.instrument("get_key_status")()

	var status models.KeyStatus
	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	err := r.db.RunInTx(ctx, opts, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.IdentityKey)(nil)).
			Where("user_id = ?", userID).
			Exists(ctx)
		if err != nil {
			return wrap(err, "prekeyRepo.GetKeyStatus.IdentityExists")
		}
		status.HasIdentityKey = exists

		err = tx.NewSelect().
			Model((*models.SignedPreKey)(nil)).
			ColumnExpr("count(*)").
			ColumnExpr("count(*) FILTER (WHERE NOT retired AND (expires_at IS NULL OR expires_at > ?))", now).
			ColumnExpr("count(*) FILTER (WHERE expires_at IS NOT NULL AND expires_at <= ?)", now).
			Where("user_id = ?", userID).
			Scan(ctx, &status.SignedPreKeys.Total, &status.SignedPreKeys.Valid, &status.SignedPreKeys.Expired)
		if err != nil {
			return wrap(err, "prekeyRepo.GetKeyStatus.SignedPreKeys")
		}

		status.OneTimePreKeys, err = countOneTimePreKeys(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &status, nil
}
