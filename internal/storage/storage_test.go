package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	kv := NewMemory()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("k", []byte(`"v"`)))
	got, ok, err := kv.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`"v"`), got)

	require.NoError(t, kv.Delete("k"))
	_, ok, err = kv.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCopiesValues(t *testing.T) {
	kv := NewMemory()
	value := []byte(`[1,2,3]`)
	require.NoError(t, kv.Set("k", value))

	value[0] = 'X'
	got, _, err := kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), got)

	got[0] = 'Y'
	again, _, err := kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), again)
}

func TestFilePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	kv, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("spud_cart", []byte(`[{"id":1}]`)))

	reopened, err := NewFile(path)
	require.NoError(t, err)
	got, ok, err := reopened.Get("spud_cart")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(got))
}

func TestFileMissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "store.json")

	kv, err := NewFile(path)
	require.NoError(t, err)
	_, ok, err := kv.Get("anything")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{{{`), 0o644))

	kv, err := NewFile(path)
	require.NoError(t, err)
	_, ok, err := kv.Get("spud_cart")
	require.NoError(t, err)
	assert.False(t, ok)

	// The store stays usable and overwrites the corrupt file on next write.
	require.NoError(t, kv.Set("spud_cart", []byte(`[]`)))
	reopened, err := NewFile(path)
	require.NoError(t, err)
	_, ok, err = reopened.Get("spud_cart")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFileDeleteRemovesKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	kv, err := NewFile(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("a", []byte(`1`)))
	require.NoError(t, kv.Set("b", []byte(`2`)))
	require.NoError(t, kv.Delete("a"))

	reopened, err := NewFile(path)
	require.NoError(t, err)
	_, ok, err := reopened.Get("a")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = reopened.Get("b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestFileEmptyPathRejected(t *testing.T) {
	_, err := NewFile("")
	assert.Error(t, err)
}
