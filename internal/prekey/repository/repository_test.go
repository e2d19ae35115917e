package repository

import (
	"context"
	"crypto/rand"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"keybroker/internal/metrics"
	models "keybroker/internal/prekey/model"
	"keybroker/pkg/logger"
)

var (
	testDB *bun.DB
	now    = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("keybroker"),
		postgres.WithUsername("keybroker"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}
	if err := CreateSchema(ctx, testDB); err != nil {
		log.Fatalf("failed to create schema: %v", err)
	}
	// Idempotent.
	if err := CreateSchema(ctx, testDB); err != nil {
		log.Fatalf("failed to re-run schema: %v", err)
	}

	code := m.Run()

	testDB.Close()
	if err := pgContainer.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
	os.Exit(code)
}

func truncate(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(),
			`TRUNCATE TABLE identity_keys, signed_pre_keys, one_time_pre_keys, used_one_time_pre_keys RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	})
}

func newTestRepo() (*PrekeyRepository, *metrics.Metrics) {
	m := metrics.New(prometheus.NewRegistry())
	return NewPrekeyRepository(testDB, logger.Logger{}, m), m
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func signedPreKey(t *testing.T, userID uuid.UUID, keyID uint32, createdAt time.Time, expiresAt *time.Time) *models.SignedPreKey {
	return &models.SignedPreKey{
		UserID:    userID,
		KeyID:     keyID,
		PublicKey: randomBytes(t, 32),
		Signature: randomBytes(t, 64),
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}
}

// oneTimePreKeys builds keys with ids first..first+n-1, one second apart.
func oneTimePreKeys(t *testing.T, userID uuid.UUID, first uint32, n int) []models.OneTimePreKey {
	keys := make([]models.OneTimePreKey, n)
	for i := range keys {
		keys[i] = models.OneTimePreKey{
			UserID:    userID,
			KeyID:     first + uint32(i),
			PublicKey: randomBytes(t, 32),
			CreatedAt: now.Add(time.Duration(first) * time.Minute).Add(time.Duration(i) * time.Second),
		}
	}
	return keys
}

func at(d time.Duration) *time.Time {
	ts := now.Add(d)
	return &ts
}

func ledgerCount(t *testing.T, userID uuid.UUID) int {
	n, err := testDB.NewSelect().
		Model((*models.UsedOneTimePreKey)(nil)).
		Where("user_id = ?", userID).
		Count(context.Background())
	require.NoError(t, err)
	return n
}

func Test_IdentityKey(t *testing.T) {
	truncate(t)
	repo, m := newTestRepo()
	ctx := context.Background()
	userID := uuid.New()

	first := &models.IdentityKey{UserID: userID, PublicKey: randomBytes(t, 32), CreatedAt: now}
	require.NoError(t, repo.CreateIdentityKey(ctx, first))
	assert.NotZero(t, first.ID)

	t.Run("second registration conflicts", func(t *testing.T) {
		err := repo.CreateIdentityKey(ctx, &models.IdentityKey{UserID: userID, PublicKey: randomBytes(t, 32), CreatedAt: now})
		assert.ErrorIs(t, err, ErrIdentityKeyExists)

		stored, err := repo.GetIdentityKey(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, first.PublicKey, stored.PublicKey)
		assert.True(t, now.Equal(stored.CreatedAt))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := repo.GetIdentityKey(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrIdentityKeyNotFound)
	})

	assert.Positive(t, testutil.CollectAndCount(m.StorageLatency))
}

func Test_GetCurrentSignedPreKey(t *testing.T) {
	truncate(t)
	repo, _ := newTestRepo()
	ctx := context.Background()

	t.Run("latest created wins", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 1, now.Add(-2*time.Hour), at(time.Hour))))
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 2, now.Add(-time.Hour), at(time.Hour))))

		current, err := repo.GetCurrentSignedPreKey(ctx, userID, now)
		require.NoError(t, err)
		assert.Equal(t, uint32(2), current.KeyID)
	})

	t.Run("ties break on insertion order", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 9, now.Add(-time.Hour), nil)))
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 3, now.Add(-time.Hour), nil)))

		current, err := repo.GetCurrentSignedPreKey(ctx, userID, now)
		require.NoError(t, err)
		assert.Equal(t, uint32(3), current.KeyID)
	})

	t.Run("expired keys are skipped", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 1, now.Add(-2*time.Hour), at(time.Hour))))
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 2, now.Add(-time.Hour), at(0))))

		current, err := repo.GetCurrentSignedPreKey(ctx, userID, now)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), current.KeyID)
	})

	t.Run("nothing current", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 1, now.Add(-2*time.Hour), at(-time.Minute))))

		_, err := repo.GetCurrentSignedPreKey(ctx, userID, now)
		assert.ErrorIs(t, err, ErrSignedPreKeyNotFound)
	})

	t.Run("duplicate key id", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 1, now, nil)))
		err := repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 1, now, nil))
		assert.ErrorIs(t, err, ErrSignedPreKeyExists)

		// Key ids are scoped per user.
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, uuid.New(), 1, now, nil)))
	})
}

func Test_RotateSignedPreKey(t *testing.T) {
	truncate(t)
	repo, _ := newTestRepo()
	ctx := context.Background()

	t.Run("retires old key and installs new one", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 1, now.Add(-time.Hour), at(time.Hour))))

		oldKeyID := uint32(1)
		retired, err := repo.RotateSignedPreKey(ctx, userID, &oldKeyID, signedPreKey(t, userID, 2, now, at(time.Hour)))
		require.NoError(t, err)
		assert.True(t, retired)

		current, err := repo.GetCurrentSignedPreKey(ctx, userID, now)
		require.NoError(t, err)
		assert.Equal(t, uint32(2), current.KeyID)

		// The retired key stays stored until cleanup.
		var old models.SignedPreKey
		err = testDB.NewSelect().Model(&old).Where("user_id = ? AND key_id = 1", userID).Scan(ctx)
		require.NoError(t, err)
		assert.True(t, old.Retired)
	})

	t.Run("missing old key still installs new one", func(t *testing.T) {
		userID := uuid.New()
		oldKeyID := uint32(77)
		retired, err := repo.RotateSignedPreKey(ctx, userID, &oldKeyID, signedPreKey(t, userID, 2, now, nil))
		require.NoError(t, err)
		assert.False(t, retired)

		current, err := repo.GetCurrentSignedPreKey(ctx, userID, now)
		require.NoError(t, err)
		assert.Equal(t, uint32(2), current.KeyID)
	})

	t.Run("conflicting new key rolls back the retirement", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 1, now.Add(-time.Hour), nil)))

		oldKeyID := uint32(1)
		_, err := repo.RotateSignedPreKey(ctx, userID, &oldKeyID, signedPreKey(t, userID, 1, now, nil))
		assert.ErrorIs(t, err, ErrSignedPreKeyExists)

		current, err := repo.GetCurrentSignedPreKey(ctx, userID, now)
		require.NoError(t, err)
		assert.Equal(t, uint32(1), current.KeyID)
		assert.False(t, current.Retired)
	})
}

func Test_DeleteExpiredSignedPreKeys(t *testing.T) {
	truncate(t)
	repo, _ := newTestRepo()
	ctx := context.Background()
	userID := uuid.New()
	otherUser := uuid.New()

	require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 1, now.Add(-3*time.Hour), at(-2*time.Hour))))
	require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 2, now.Add(-2*time.Hour), at(-time.Hour))))
	require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 3, now.Add(-time.Hour), at(0))))
	require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 4, now, at(time.Hour))))
	require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 5, now, nil)))
	require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, otherUser, 1, now.Add(-3*time.Hour), at(-2*time.Hour))))

	n, err := repo.DeleteExpiredSignedPreKeys(ctx, userID, now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.DeleteExpiredSignedPreKeys(ctx, userID, now)
	require.NoError(t, err)
	assert.Zero(t, n)

	remaining, err := testDB.NewSelect().Model((*models.SignedPreKey)(nil)).Where("user_id = ?", userID).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)

	others, err := testDB.NewSelect().Model((*models.SignedPreKey)(nil)).Where("user_id = ?", otherUser).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, others)
}

func Test_InsertOneTimePreKeys(t *testing.T) {
	truncate(t)
	repo, _ := newTestRepo()
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.InsertOneTimePreKeys(ctx, oneTimePreKeys(t, userID, 1, 3)))

	t.Run("a single conflict rejects the whole batch", func(t *testing.T) {
		batch := oneTimePreKeys(t, userID, 4, 2)
		batch = append(batch, oneTimePreKeys(t, userID, 2, 1)...)

		err := repo.InsertOneTimePreKeys(ctx, batch)
		assert.ErrorIs(t, err, ErrOneTimePreKeyExists)

		counts, err := repo.CountOneTimePreKeys(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, models.OneTimePreKeyCounts{Total: 3, Unused: 3}, counts)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		require.NoError(t, repo.InsertOneTimePreKeys(ctx, nil))
	})
}

func Test_ConsumeOneTimePreKey(t *testing.T) {
	truncate(t)
	repo, _ := newTestRepo()
	ctx := context.Background()

	t.Run("upload 50 consume 10", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.InsertOneTimePreKeys(ctx, oneTimePreKeys(t, userID, 1, 50)))

		counts, err := repo.CountOneTimePreKeys(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, models.OneTimePreKeyCounts{Total: 50, Unused: 50}, counts)

		for i := 0; i < 10; i++ {
			key, err := repo.ConsumeOneTimePreKey(ctx, userID, now)
			require.NoError(t, err)
			require.NotNil(t, key)
			assert.True(t, key.Used)
			require.NotNil(t, key.UsedAt)
			assert.True(t, now.Equal(*key.UsedAt))
		}

		counts, err = repo.CountOneTimePreKeys(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, models.OneTimePreKeyCounts{Total: 50, Unused: 40}, counts)
		assert.Equal(t, 10, counts.Used())
		assert.Equal(t, 10, ledgerCount(t, userID))
	})

	t.Run("oldest first", func(t *testing.T) {
		userID := uuid.New()
		// Order follows created_at, not insertion order or key id.
		require.NoError(t, repo.InsertOneTimePreKeys(ctx, oneTimePreKeys(t, userID, 100, 2)))
		require.NoError(t, repo.InsertOneTimePreKeys(ctx, oneTimePreKeys(t, userID, 1, 3)))

		var got []uint32
		for i := 0; i < 5; i++ {
			key, err := repo.ConsumeOneTimePreKey(ctx, userID, now)
			require.NoError(t, err)
			require.NotNil(t, key)
			got = append(got, key.KeyID)
		}
		assert.Equal(t, []uint32{1, 2, 3, 100, 101}, got)
	})

	t.Run("empty pool", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.InsertOneTimePreKeys(ctx, oneTimePreKeys(t, userID, 1, 1)))

		key, err := repo.ConsumeOneTimePreKey(ctx, userID, now)
		require.NoError(t, err)
		require.NotNil(t, key)

		for i := 0; i < 2; i++ {
			key, err = repo.ConsumeOneTimePreKey(ctx, userID, now)
			require.NoError(t, err)
			assert.Nil(t, key)
		}
		assert.Equal(t, 1, ledgerCount(t, userID))
	})

	t.Run("other users are untouched", func(t *testing.T) {
		userID, otherUser := uuid.New(), uuid.New()
		require.NoError(t, repo.InsertOneTimePreKeys(ctx, oneTimePreKeys(t, otherUser, 1, 2)))

		key, err := repo.ConsumeOneTimePreKey(ctx, userID, now)
		require.NoError(t, err)
		assert.Nil(t, key)

		counts, err := repo.CountOneTimePreKeys(ctx, otherUser)
		require.NoError(t, err)
		assert.Equal(t, 2, counts.Unused)
	})
}

func Test_ConsumeOneTimePreKey_Concurrent(t *testing.T) {
	truncate(t)
	repo, _ := newTestRepo()
	ctx := context.Background()

	consumeAll := func(t *testing.T, userID uuid.UUID, workers int) []uint32 {
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			got  []uint32
			errs []error
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				key, err := repo.ConsumeOneTimePreKey(ctx, userID, now)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs = append(errs, err)
					return
				}
				if key != nil {
					got = append(got, key.KeyID)
				}
			}()
		}
		wg.Wait()
		require.Empty(t, errs)
		return got
	}

	t.Run("fewer consumers than keys", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.InsertOneTimePreKeys(ctx, oneTimePreKeys(t, userID, 1, 30)))

		got := consumeAll(t, userID, 20)
		assert.Len(t, got, 20)

		seen := make(map[uint32]bool, len(got))
		for _, id := range got {
			assert.False(t, seen[id], "key %d handed out twice", id)
			seen[id] = true
		}

		counts, err := repo.CountOneTimePreKeys(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 10, counts.Unused)
		assert.Equal(t, 20, ledgerCount(t, userID))
	})

	t.Run("more consumers than keys", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.InsertOneTimePreKeys(ctx, oneTimePreKeys(t, userID, 1, 5)))

		got := consumeAll(t, userID, 15)
		assert.ElementsMatch(t, []uint32{1, 2, 3, 4, 5}, got)

		counts, err := repo.CountOneTimePreKeys(ctx, userID)
		require.NoError(t, err)
		assert.Zero(t, counts.Unused)
		assert.Equal(t, 5, ledgerCount(t, userID))
	})
}

func Test_MarkOneTimePreKeyUsed(t *testing.T) {
	truncate(t)
	repo, _ := newTestRepo()
	ctx := context.Background()
	userID := uuid.New()
	require.NoError(t, repo.InsertOneTimePreKeys(ctx, oneTimePreKeys(t, userID, 1, 3)))

	require.NoError(t, repo.MarkOneTimePreKeyUsed(ctx, userID, 2, now))

	err := repo.MarkOneTimePreKeyUsed(ctx, userID, 2, now)
	assert.ErrorIs(t, err, ErrOneTimePreKeyAlreadyUsed)

	err = repo.MarkOneTimePreKeyUsed(ctx, userID, 42, now)
	assert.ErrorIs(t, err, ErrOneTimePreKeyNotFound)

	err = repo.MarkOneTimePreKeyUsed(ctx, uuid.New(), 1, now)
	assert.ErrorIs(t, err, ErrOneTimePreKeyNotFound)

	// Explicitly marked keys are never handed out.
	for _, want := range []uint32{1, 3} {
		key, err := repo.ConsumeOneTimePreKey(ctx, userID, now)
		require.NoError(t, err)
		require.NotNil(t, key)
		assert.Equal(t, want, key.KeyID)
	}
	assert.Equal(t, 3, ledgerCount(t, userID))
}

func Test_FetchKeyBundle(t *testing.T) {
	truncate(t)
	repo, _ := newTestRepo()
	ctx := context.Background()

	setup := func(t *testing.T, oneTimeKeys int) (uuid.UUID, *models.IdentityKey) {
		userID := uuid.New()
		ik := &models.IdentityKey{UserID: userID, PublicKey: randomBytes(t, 32), CreatedAt: now}
		require.NoError(t, repo.CreateIdentityKey(ctx, ik))
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 1, now.Add(-time.Hour), at(time.Hour))))
		if oneTimeKeys > 0 {
			require.NoError(t, repo.InsertOneTimePreKeys(ctx, oneTimePreKeys(t, userID, 1, oneTimeKeys)))
		}
		return userID, ik
	}

	t.Run("with one-time key", func(t *testing.T) {
		userID, ik := setup(t, 2)

		bundle, err := repo.FetchKeyBundle(ctx, userID, true, now)
		require.NoError(t, err)
		assert.Equal(t, ik.PublicKey, bundle.IdentityKey)
		assert.Equal(t, uint32(1), bundle.SignedPreKey.KeyID)
		require.NotNil(t, bundle.OneTimePreKey)
		assert.Equal(t, uint32(1), bundle.OneTimePreKey.KeyID)

		counts, err := repo.CountOneTimePreKeys(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, counts.Unused)
	})

	t.Run("without one-time key leaves the pool alone", func(t *testing.T) {
		userID, _ := setup(t, 2)

		bundle, err := repo.FetchKeyBundle(ctx, userID, false, now)
		require.NoError(t, err)
		assert.Nil(t, bundle.OneTimePreKey)

		counts, err := repo.CountOneTimePreKeys(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, models.OneTimePreKeyCounts{Total: 2, Unused: 2}, counts)
		assert.Zero(t, ledgerCount(t, userID))
	})

	t.Run("empty pool still yields a bundle", func(t *testing.T) {
		userID, _ := setup(t, 0)

		bundle, err := repo.FetchKeyBundle(ctx, userID, true, now)
		require.NoError(t, err)
		assert.Nil(t, bundle.OneTimePreKey)
	})

	t.Run("no identity key", func(t *testing.T) {
		_, err := repo.FetchKeyBundle(ctx, uuid.New(), true, now)
		assert.ErrorIs(t, err, ErrIdentityKeyNotFound)
	})

	t.Run("no current signed prekey consumes nothing", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.CreateIdentityKey(ctx, &models.IdentityKey{UserID: userID, PublicKey: randomBytes(t, 32), CreatedAt: now}))
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 1, now.Add(-time.Hour), at(-time.Minute))))
		require.NoError(t, repo.InsertOneTimePreKeys(ctx, oneTimePreKeys(t, userID, 1, 1)))

		_, err := repo.FetchKeyBundle(ctx, userID, true, now)
		assert.ErrorIs(t, err, ErrSignedPreKeyNotFound)

		counts, err := repo.CountOneTimePreKeys(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, counts.Unused)
	})
}

func Test_GetKeyStatus(t *testing.T) {
	truncate(t)
	repo, _ := newTestRepo()
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		status, err := repo.GetKeyStatus(ctx, uuid.New(), now)
		require.NoError(t, err)
		assert.Equal(t, &models.KeyStatus{}, status)
	})

	t.Run("mixed state", func(t *testing.T) {
		userID := uuid.New()
		require.NoError(t, repo.CreateIdentityKey(ctx, &models.IdentityKey{UserID: userID, PublicKey: randomBytes(t, 32), CreatedAt: now}))
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 1, now.Add(-3*time.Hour), at(-time.Hour))))
		require.NoError(t, repo.InsertSignedPreKey(ctx, signedPreKey(t, userID, 2, now.Add(-2*time.Hour), at(time.Hour))))
		oldKeyID := uint32(2)
		_, err := repo.RotateSignedPreKey(ctx, userID, &oldKeyID, signedPreKey(t, userID, 3, now.Add(-time.Hour), at(time.Hour)))
		require.NoError(t, err)

		require.NoError(t, repo.InsertOneTimePreKeys(ctx, oneTimePreKeys(t, userID, 1, 10)))
		for i := 0; i < 3; i++ {
			_, err := repo.ConsumeOneTimePreKey(ctx, userID, now)
			require.NoError(t, err)
		}

		status, err := repo.GetKeyStatus(ctx, userID, now)
		require.NoError(t, err)
		assert.True(t, status.HasIdentityKey)
		assert.Equal(t, models.SignedPreKeyCounts{Total: 3, Valid: 1, Expired: 1}, status.SignedPreKeys)
		assert.Equal(t, models.OneTimePreKeyCounts{Total: 10, Unused: 7}, status.OneTimePreKeys)
	})
}
