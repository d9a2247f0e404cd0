package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	r := NewRepository(t.TempDir())

	a, err := r.Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), a)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	r := NewRepository(dir)

	want := Appearance{Theme: "light", AccentColor: "orange", CompactMode: true}
	require.NoError(t, r.Save(want))

	got, err := NewRepository(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSet_SingleKeyPersistsImmediately(t *testing.T) {
	dir := t.TempDir()
	r := NewRepository(dir)

	require.NoError(t, r.Set("theme", "light"))
	require.NoError(t, r.Set("compact_mode", "true"))

	got, err := NewRepository(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "light", got.Theme)
	assert.True(t, got.CompactMode)
	assert.Equal(t, Defaults().AccentColor, got.AccentColor)
}

func TestSet_UnknownKeyRejected(t *testing.T) {
	r := NewRepository(t.TempDir())
	assert.Error(t, r.Set("font_size", "12"))
}
