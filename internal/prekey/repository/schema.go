package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "keybroker/internal/prekey/model"
)

// CreateSchema creates the prekey tables and their indexes if missing.
func CreateSchema(ctx context.Context, db bun.IDB) error {
	tables := []any{
		(*models.IdentityKey)(nil),
		(*models.SignedPreKey)(nil),
		(*models.OneTimePreKey)(nil),
		(*models.UsedOneTimePreKey)(nil),
	}
	for _, t := range tables {
		if _, err := db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrapf(err, "create table for %T", t)
		}
	}

	indexes := []*bun.CreateIndexQuery{
		db.NewCreateIndex().
			Model((*models.SignedPreKey)(nil)).
			Index("signed_pre_keys_current_idx").
			Column("user_id", "created_at").
			Where("retired = FALSE"),
		// Drives the FIFO pick in ConsumeOneTimePreKey.
		db.NewCreateIndex().
			Model((*models.OneTimePreKey)(nil)).
			Index("one_time_pre_keys_unused_idx").
			Column("user_id", "created_at", "id").
			Where("used = FALSE"),
		db.NewCreateIndex().
			Model((*models.UsedOneTimePreKey)(nil)).
			Index("used_one_time_pre_keys_user_idx").
			Column("user_id", "consumed_at"),
	}
	for _, idx := range indexes {
		if _, err := idx.IfNotExists().Exec(ctx); err != nil {
			return errors.Wrap(err, "create index")
		}
	}
	return nil
}
