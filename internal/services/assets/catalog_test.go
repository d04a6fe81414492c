package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaiidees/riser-gacha/internal/dependencies/mocks"
	"github.com/jaiidees/riser-gacha/internal/model"
	"github.com/jaiidees/riser-gacha/internal/testutil"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644))
	}
}

func TestPickFromPrimaryDirectory(t *testing.T) {
	primary := t.TempDir()
	fallback := t.TempDir()
	writeFiles(t, filepath.Join(primary, "male"), "a.png", "b.png")

	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(1)
	catalog := New(primary, fallback, rnd, testutil.NopLogger())

	name, err := catalog.Pick(model.SideMale)
	require.NoError(t, err)
	assert.Equal(t, "b.png", name)
}

func TestPickIgnoresNonImageFiles(t *testing.T) {
	primary := t.TempDir()
	writeFiles(t, filepath.Join(primary, "female"), "a.png", "notes.txt", "b.JPEG")

	rnd := mocks.NewMockRandom()
	rnd.QueueIntn(0, 1)
	catalog := New(primary, t.TempDir(), rnd, testutil.NopLogger())

	first, err := catalog.Pick(model.SideFemale)
	require.NoError(t, err)
	second, err := catalog.Pick(model.SideFemale)
	require.NoError(t, err)

	// Sorted bucket is [a.png, b.JPEG]; notes.txt filtered out
	assert.Equal(t, "a.png", first)
	assert.Equal(t, "b.JPEG", second)
}

func TestPickFallsBackWhenPrimaryMissing(t *testing.T) {
	fallback := t.TempDir()
	writeFiles(t, filepath.Join(fallback, "male"), "raw.jpg")

	catalog := New(filepath.Join(t.TempDir(), "absent"), fallback, mocks.NewMockRandom(), testutil.NopLogger())

	name, err := catalog.Pick(model.SideMale)
	require.NoError(t, err)
	assert.Equal(t, "raw.jpg", name)
}

func TestPickUnavailableWhenBothDirsMissing(t *testing.T) {
	catalog := New(t.TempDir(), t.TempDir(), mocks.NewMockRandom(), testutil.NopLogger())

	_, err := catalog.Pick(model.SideMale)
	assert.ErrorIs(t, err, model.ErrAssetsUnavailable)
}

func TestPickUnavailableForUnrecognizedSide(t *testing.T) {
	primary := t.TempDir()
	writeFiles(t, filepath.Join(primary, "male"), "a.png")

	catalog := New(primary, t.TempDir(), mocks.NewMockRandom(), testutil.NopLogger())

	_, err := catalog.Pick(model.Side("robot"))
	assert.ErrorIs(t, err, model.ErrAssetsUnavailable)
}

func TestPickUnavailableWhenOnlyNonImages(t *testing.T) {
	primary := t.TempDir()
	writeFiles(t, filepath.Join(primary, "male"), "readme.md")

	catalog := New(primary, t.TempDir(), mocks.NewMockRandom(), testutil.NopLogger())

	_, err := catalog.Pick(model.SideMale)
	assert.ErrorIs(t, err, model.ErrAssetsUnavailable)
}

func TestResolvePrefersPrimaryThenFallback(t *testing.T) {
	primary := t.TempDir()
	fallback := t.TempDir()
	writeFiles(t, filepath.Join(primary, "male"), "a.png")
	writeFiles(t, filepath.Join(fallback, "male"), "a.png", "only-raw.png")

	catalog := New(primary, fallback, mocks.NewMockRandom(), testutil.NopLogger())

	path, err := catalog.Resolve(model.SideMale, "a.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(primary, "male", "a.png"), path)

	path, err = catalog.Resolve(model.SideMale, "only-raw.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(fallback, "male", "only-raw.png"), path)
}

func TestResolveNotFound(t *testing.T) {
	catalog := New(t.TempDir(), t.TempDir(), mocks.NewMockRandom(), testutil.NopLogger())

	_, err := catalog.Resolve(model.SideMale, "missing.png")
	assert.ErrorIs(t, err, model.ErrAssetNotFound)
}

func TestResolveRejectsTraversal(t *testing.T) {
	primary := t.TempDir()
	writeFiles(t, filepath.Join(primary, "male"), "a.png")

	catalog := New(primary, t.TempDir(), mocks.NewMockRandom(), testutil.NopLogger())

	for _, filename := range []string{"../a.png", "..", ".", "sub/a.png", `sub\a.png`, ""} {
		_, err := catalog.Resolve(model.SideMale, filename)
		assert.ErrorIs(t, err, model.ErrAssetNotFound, "filename %q", filename)
	}
}
