package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/streamdash/internal/catalog"
)

func TestStore_ReplaceAll_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	ds := testDataset()

	before := time.Now()
	imp, err := store.ReplaceAll(ds, "catalog.csv")
	require.NoError(t, err)
	assert.NotZero(t, imp.ID)
	assert.Equal(t, 3, imp.Rows)
	assert.Equal(t, 1, imp.DefaultedCategories)
	assert.Equal(t, 2, imp.MissingDates)
	assert.False(t, imp.ImportedAt.Before(before))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, ds.Len(), loaded.Len())
	for i := range ds.Len() {
		assert.Equal(t, *ds.At(i), *loaded.At(i), "entry %d", i)
	}
}

func TestStore_ReplaceAll_Replaces(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	_, err := store.ReplaceAll(testDataset(), "first.csv")
	require.NoError(t, err)

	smaller := catalog.Normalize([]catalog.RawRow{{catalog.ColID: "only"}})
	_, err = store.ReplaceAll(smaller, "second.csv")
	require.NoError(t, err)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	last, err := store.LastImport()
	require.NoError(t, err)
	assert.Equal(t, "second.csv", last.Source)
}

func TestStore_ReplaceAll_KeepsStats(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ds := catalog.Normalize([]catalog.RawRow{
		{catalog.ColID: "s1"},
		{catalog.ColCategory: "Movie"},
	})
	want := catalog.Stats{
		Rows:                2,
		SyntheticIDs:        1,
		DefaultedCategories: 1,
		DefaultedCountries:  2,
		DefaultedRatings:    2,
		MissingDates:        2,
		MissingDurations:    2,
	}
	require.Equal(t, want, ds.Stats())

	_, err := store.ReplaceAll(ds, "catalog.csv")
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, loaded.Stats())
	assert.Equal(t, catalog.UnknownCategory, loaded.At(0).Category)
	assert.Equal(t, "row-2", loaded.At(1).ID)
}

func TestStore_ReplaceAll_DuplicateIDs(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ds := catalog.Normalize([]catalog.RawRow{
		{catalog.ColCategory: "Movie"},
		{catalog.ColID: "row-1"},
		{catalog.ColID: "x"},
		{catalog.ColID: "x"},
	})

	imp, err := store.ReplaceAll(ds, "catalog.csv")
	require.NoError(t, err)
	assert.Equal(t, 4, imp.Rows)

	loaded, err := store.Load()
	require.NoError(t, err)
	var ids []string
	for _, e := range loaded.All() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"row-1", "row-1-2", "x", "x-2"}, ids)
	assert.Equal(t, 2, loaded.Stats().DuplicateIDs)
}

func TestStore_Load_Empty(t *testing.T) {
	store := NewStore(setupTestDB(t))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = store.LastImport()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTx_Rollback(t *testing.T) {
	store := NewStore(setupTestDB(t))

	tx, err := store.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.AddEntry(testDataset().At(0)))
	require.NoError(t, tx.Rollback())

	n, err := store.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTx_AddImport_Constraint(t *testing.T) {
	store := NewStore(setupTestDB(t))

	tx, err := store.Begin()
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	err = tx.AddImport(&Import{Source: "catalog.csv", Rows: -1})
	assert.ErrorIs(t, err, ErrConstraint)
}
