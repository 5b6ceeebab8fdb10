package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "ledger.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestRecordAssignsID(t *testing.T) {
	l := openTest(t)
	s := &Session{StartedAt: time.Now().Add(-time.Minute), EndedAt: time.Now(), Credits: 3}
	require.NoError(t, l.Record(s))

	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err, "session id should be a uuid")

	n, err := l.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestBestOrdering(t *testing.T) {
	l := openTest(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, credits := range []int64{4, 9, 1, 9} {
		require.NoError(t, l.Record(&Session{
			StartedAt: base,
			EndedAt:   base.Add(time.Duration(i) * time.Hour),
			Credits:   credits,
		}))
	}

	best, err := l.Best(3)
	require.NoError(t, err)
	require.Len(t, best, 3)
	assert.Equal(t, int64(9), best[0].Credits)
	assert.Equal(t, int64(9), best[1].Credits)
	assert.True(t, best[0].EndedAt.After(best[1].EndedAt), "ties break on most recent")
	assert.Equal(t, int64(4), best[2].Credits)
}

func TestInMemory(t *testing.T) {
	l, err := Open("", zerolog.Nop())
	require.NoError(t, err)
	defer l.Close()

	require.NoError(t, l.Record(&Session{ID: "fixed", Credits: 1}))
	best, err := l.Best(10)
	require.NoError(t, err)
	require.Len(t, best, 1)
	assert.Equal(t, "fixed", best[0].ID)
}

func TestClosedLedger(t *testing.T) {
	l := openTest(t)
	require.NoError(t, l.Close())

	assert.ErrorIs(t, l.Record(&Session{}), ErrNotOpen)
	_, err := l.Best(1)
	assert.ErrorIs(t, err, ErrNotOpen)
	assert.NoError(t, l.Close())

	var nilLedger *Ledger
	assert.ErrorIs(t, nilLedger.Record(&Session{}), ErrNotOpen)
}
