package persist

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glavblock/glavblock/internal/config"
)

func TestPoolConfig(t *testing.T) {
	cfg := config.Default().Journal
	cfg.MaxOpenConns = 6
	cfg.MaxIdleConns = 2
	cfg.ConnMaxLifetime = time.Minute

	pc, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(6), pc.MaxConns)
	assert.Equal(t, int32(2), pc.MinConns)
	assert.Equal(t, time.Minute, pc.MaxConnLifetime)
	assert.Equal(t, "glavblock", pc.ConnConfig.Database)
}

func TestPoolConfigBadDSN(t *testing.T) {
	cfg := config.Default().Journal
	cfg.DSN = "postgres://host:notaport/db"
	_, err := poolConfig(cfg)
	assert.ErrorContains(t, err, "parse dsn")
}

func TestMigrationsAreEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		raw, err := fs.ReadFile(migrations, f)
		require.NoError(t, err)
		body := string(raw)
		assert.True(t, strings.Contains(body, "-- +goose Up"), f)
		assert.True(t, strings.Contains(body, "-- +goose Down"), f)
	}
}

func TestJournalTimeout(t *testing.T) {
	r := NewJournalRepo(nil, 0)
	ctx, cancel := r.withTimeout(context.Background())
	defer cancel()
	_, has := ctx.Deadline()
	assert.False(t, has)

	r = NewJournalRepo(nil, time.Second)
	ctx, cancel = r.withTimeout(context.Background())
	defer cancel()
	_, has = ctx.Deadline()
	assert.True(t, has)
}
