package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedSource_WrapsAndCounts(t *testing.T) {
	src := NewScriptedSource(0.1, 0.9)
	assert.Equal(t, 0.1, src.Float64())
	assert.Equal(t, 0.9, src.Float64())
	assert.Equal(t, 0.1, src.Float64())
	assert.Equal(t, 3, src.Drawn)
}

func TestScriptedSource_EmptyYieldsZero(t *testing.T) {
	src := NewScriptedSource()
	assert.Equal(t, 0.0, src.Float64())
	assert.Equal(t, 0.0, src.Float64())
	assert.Equal(t, 2, src.Drawn)
}

func TestWriteTempFile(t *testing.T) {
	path := WriteTempFile(t, "profile.yaml", "preset: koch-2d\n")
	assert.True(t, filepath.IsAbs(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "preset: koch-2d\n", string(data))
}
