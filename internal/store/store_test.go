package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alephlabs/aleph/internal/factored"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aleph.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aleph.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s2.Close())
}

func TestPutGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	m := Materialization{
		Digest:  "d1",
		Factors: "2^10",
		Value:   "1024",
		Session: NewSessionToken(),
	}
	require.NoError(t, s.Put(ctx, m))

	got, ok, err := s.Get(ctx, "d1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1024", got.Value)
	assert.Equal(t, "2^10", got.Factors)
	assert.Equal(t, int64(1), got.Seq)
}

func TestPutIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := Materialization{Digest: "d1", Factors: "2^3", Value: "8", Session: "session-a"}
	require.NoError(t, s.Put(ctx, first))

	// A second write with the same digest must not overwrite the original.
	second := Materialization{Digest: "d1", Factors: "8^1", Value: "8", Session: "session-b"}
	require.NoError(t, s.Put(ctx, second))

	got, ok, err := s.Get(ctx, "d1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "session-a", got.Session)
	assert.Equal(t, "2^3", got.Factors)
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutRejectsEmptyDigest(t *testing.T) {
	s := openTestStore(t)
	err := s.Put(context.Background(), Materialization{Value: "1"})
	require.Error(t, err)
}

func TestListOrdersBySeq(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, d := range []string{"dc", "da", "db"} {
		require.NoError(t, s.Put(ctx, Materialization{Digest: d, Factors: "f", Value: "1", Session: "s"}))
	}

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].Seq, all[1].Seq, all[2].Seq})
	assert.Equal(t, "dc", all[0].Digest)
}

func TestMaterializeCachesAndReuses(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	session := NewSessionToken()

	p, err := factored.NewPInt(2, 10)
	require.NoError(t, err)
	n, err := factored.NewN(p)
	require.NoError(t, err)

	v, err := s.Materialize(ctx, n, session)
	require.NoError(t, err)
	assert.Equal(t, "1024", v.String())

	got, ok, err := s.Get(ctx, n.Digest())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1024", got.Value)
	assert.Equal(t, session, got.Session)

	// Second call hits the cache; same value, no new row.
	v2, err := s.Materialize(ctx, n, "session-other")
	require.NoError(t, err)
	assert.Zero(t, v.Cmp(v2))

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMaterializeSharedAcrossShapes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// 2^2 * 3 and 12 share a digest, so the second shape reuses the row.
	p1, err := factored.NewPInt(2, 2)
	require.NoError(t, err)
	p2, err := factored.NewPInt(3, 1)
	require.NoError(t, err)
	a, err := factored.NewN(p1, p2)
	require.NoError(t, err)

	p3, err := factored.NewPInt(12, 1)
	require.NoError(t, err)
	b, err := factored.NewN(p3)
	require.NoError(t, err)

	_, err = s.Materialize(ctx, a, "s")
	require.NoError(t, err)
	v, err := s.Materialize(ctx, b, "s")
	require.NoError(t, err)
	assert.Equal(t, "12", v.String())

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSessionTokenShape(t *testing.T) {
	tok := NewSessionToken()
	assert.True(t, strings.HasPrefix(tok, "session-"))
	assert.NotEqual(t, tok, NewSessionToken())
}
