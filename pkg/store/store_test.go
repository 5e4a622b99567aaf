package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noise-go/pkg/mapbuild"
	"noise-go/pkg/permtable"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "noise.db"))
	require.NoError(t, err, "opening the test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestTableRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	table := permtable.New(4242)
	require.NoError(t, s.SaveTable(ctx, "clouds", 4242, &table))

	loaded, seed, err := s.LoadTable(ctx, "clouds")
	require.NoError(t, err)
	assert.Equal(t, uint32(4242), seed)
	assert.Equal(t, table.Hash(1, 2, 3), loaded.Hash(1, 2, 3))

	raw, err := table.MarshalBinary()
	require.NoError(t, err)
	rawLoaded, err := loaded.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, raw, rawLoaded)
}

func TestSaveTableReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := permtable.New(1)
	second := permtable.New(2)
	require.NoError(t, s.SaveTable(ctx, "world", 1, &first))
	require.NoError(t, s.SaveTable(ctx, "world", 2, &second))

	_, seed, err := s.LoadTable(ctx, "world")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), seed, "the second save should win")

	infos, err := s.ListTables(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 1)
}

func TestLoadTableNotFound(t *testing.T) {
	s := openTestStore(t)
	_, _, err := s.LoadTable(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTable(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	table := permtable.New(7)
	require.NoError(t, s.SaveTable(ctx, "gone", 7, &table))
	require.NoError(t, s.DeleteTable(ctx, "gone"))

	_, _, err := s.LoadTable(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteTable(ctx, "gone"), ErrNotFound)
}

func TestListTablesOrdered(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i, name := range []string{"zeta", "alpha", "mid"} {
		table := permtable.New(uint32(i))
		require.NoError(t, s.SaveTable(ctx, name, uint32(i), &table))
	}
	infos, err := s.ListTables(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "alpha", infos[0].Name)
	assert.Equal(t, "mid", infos[1].Name)
	assert.Equal(t, "zeta", infos[2].Name)
	assert.False(t, infos[0].CreatedAt.IsZero())
}

func TestGridRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	g := mapbuild.NewGrid(16, 9)
	for i := range g.Values {
		g.Values[i] = float64(i) / 8
	}
	require.NoError(t, s.SaveGrid(ctx, "heights", g))

	loaded, err := s.LoadGrid(ctx, "heights")
	require.NoError(t, err)
	assert.Equal(t, g.W, loaded.W)
	assert.Equal(t, g.H, loaded.H)
	assert.Equal(t, g.Values, loaded.Values)

	infos, err := s.ListGrids(ctx)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "heights", infos[0].Name)
	assert.Equal(t, 16, infos[0].Width)
	assert.Equal(t, 9, infos[0].Height)
}

func TestGridNotFoundAndDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.LoadGrid(ctx, "absent")
	assert.ErrorIs(t, err, ErrNotFound)

	g := mapbuild.NewGrid(2, 2)
	require.NoError(t, s.SaveGrid(ctx, "tiny", g))
	require.NoError(t, s.DeleteGrid(ctx, "tiny"))
	assert.ErrorIs(t, s.DeleteGrid(ctx, "tiny"), ErrNotFound)
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noise.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	table := permtable.New(99)
	require.NoError(t, s.SaveTable(ctx, "persist", 99, &table))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	_, seed, err := s.LoadTable(ctx, "persist")
	require.NoError(t, err)
	assert.Equal(t, uint32(99), seed)
}
