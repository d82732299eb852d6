package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Clamp(0, 1, 127))
	assert.Equal(127, Clamp(300, 1, 127))
	assert.Equal(64, Clamp(64, 1, 127))
	assert.Equal(0.0, Clamp(-0.5, 0, 1))
}

func TestSortedKeys(t *testing.T) {
	m := map[int]bool{67: true, 60: true, 64: true}
	assert.Equal(t, []int{60, 64, 67}, SortedKeys(m))
}

func TestGatherAllScorePaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0777))
	for _, name := range []string{"a.yaml", "b.mid", "sub/c.json", "sub/d.YML", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
	}

	paths, err := GatherAllScorePaths(dir, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "sub/c.json"),
		filepath.Join(dir, "sub/d.YML"),
	}, paths)

	limited, err := GatherAllScorePaths(dir, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestGatherAllScorePathsMissingRoot(t *testing.T) {
	_, err := GatherAllScorePaths(filepath.Join(t.TempDir(), "nope"), 0)
	assert.Error(t, err)
}
