package jsondb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"excursion-booking/config"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(&config.StorageConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	return store
}

func TestViewMissingFileReadsEmpty(t *testing.T) {
	store := newTestStore(t)

	var records []record
	require.NoError(t, store.View("things", &records))
	assert.Empty(t, records)
}

func TestUpdateRoundTrip(t *testing.T) {
	store := newTestStore(t)

	err := store.Update(func(tx *Tx) error {
		var records []record
		if err := tx.Read("things", &records); err != nil {
			return err
		}
		records = append(records, record{ID: 1, Name: "first"}, record{ID: 2, Name: "second"})
		return tx.Write("things", records)
	})
	require.NoError(t, err)

	var records []record
	require.NoError(t, store.View("things", &records))
	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Name)
	assert.Equal(t, int64(2), records[1].ID)
}

func TestWriteReplacesWholeCollection(t *testing.T) {
	store := newTestStore(t)

	for _, set := range [][]record{
		{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}},
		{{ID: 3, Name: "c"}},
	} {
		set := set
		err := store.Update(func(tx *Tx) error {
			return tx.Write("things", set)
		})
		require.NoError(t, err)
	}

	var records []record
	require.NoError(t, store.View("things", &records))
	require.Len(t, records, 1)
	assert.Equal(t, int64(3), records[0].ID)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(&config.StorageConfig{Dir: dir})
	require.NoError(t, err)

	err = store.Update(func(tx *Tx) error {
		return tx.Write("things", []record{{ID: 1, Name: "a"}})
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "things.json", entries[0].Name())
	assert.Equal(t, filepath.Join(dir, "things.json"), store.path("things"))
}

func TestNewStoreRequiresDir(t *testing.T) {
	_, err := NewStore(&config.StorageConfig{})
	assert.Error(t, err)
}
