package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name string `json:"name"`
}

func TestNewCache(t *testing.T) {
	// Arrange
	dir := filepath.Join(t.TempDir(), "cache")

	// Act
	c, err := NewCache(dir, time.Hour)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.DirExists(t, dir)
}

func TestCache_Key(t *testing.T) {
	c := &Cache{}

	k1 := c.Key("gemini", "prompt")
	k2 := c.Key("gemini", "prompt")

	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 64)
	assert.NotEqual(t, c.Key("ab", "c"), c.Key("a", "bc"))
}

func TestCache_SetAndGet(t *testing.T) {
	t.Run("should return stored values", func(t *testing.T) {
		// Arrange
		c, err := NewCache(t.TempDir(), time.Hour)
		require.NoError(t, err)
		key := c.Key("matereadme")

		// Act
		require.NoError(t, c.Set(key, entry{Name: "readme"}))
		var got entry
		hit, err := c.Get(key, &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, "readme", got.Name)
	})

	t.Run("should miss unknown keys", func(t *testing.T) {
		c, err := NewCache(t.TempDir(), time.Hour)
		require.NoError(t, err)

		var got entry
		hit, err := c.Get(c.Key("nope"), &got)

		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("should expire old entries", func(t *testing.T) {
		// Arrange
		dir := t.TempDir()
		c, err := NewCache(dir, time.Hour)
		require.NoError(t, err)
		key := c.Key("old")
		require.NoError(t, c.Set(key, entry{Name: "stale"}))
		c.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		// Act
		var got entry
		hit, err := c.Get(key, &got)

		// Assert
		require.NoError(t, err)
		assert.False(t, hit)
		assert.NoFileExists(t, filepath.Join(dir, key+".json"))
	})

	t.Run("should drop corrupted entries", func(t *testing.T) {
		dir := t.TempDir()
		c, err := NewCache(dir, time.Hour)
		require.NoError(t, err)
		key := c.Key("broken")
		require.NoError(t, os.WriteFile(filepath.Join(dir, key+".json"), []byte("{not json"), 0644))

		var got entry
		hit, err := c.Get(key, &got)

		assert.Error(t, err)
		assert.False(t, hit)
		assert.NoFileExists(t, filepath.Join(dir, key+".json"))
	})
}

func TestCache_CleanExpired(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	c, err := NewCache(dir, time.Hour)
	require.NoError(t, err)
	fresh := c.Key("fresh")
	stale := c.Key("stale")
	require.NoError(t, c.Set(fresh, entry{Name: "fresh"}))
	require.NoError(t, c.Set(stale, entry{Name: "stale"}))
	old := time.Now().Add(-3 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, stale+".json"), old, old))

	// Act
	err = c.CleanExpired()

	// Assert
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, fresh+".json"))
	assert.NoFileExists(t, filepath.Join(dir, stale+".json"))
}

func TestCache_Clean(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := NewCache(dir, time.Hour)
	require.NoError(t, err)
	require.NoError(t, c.Set(c.Key("x"), entry{Name: "x"}))

	require.NoError(t, c.Clean())

	assert.NoDirExists(t, dir)
}
