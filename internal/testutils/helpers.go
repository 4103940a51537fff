package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ScriptedSource replays fixed draws in a loop and counts how many were consumed.
// It satisfies ports.RandomSource.
type ScriptedSource struct {
	Values []float64
	Drawn  int
}

// NewScriptedSource returns a source that yields values in order, wrapping around.
func NewScriptedSource(values ...float64) *ScriptedSource {
	return &ScriptedSource{Values: values}
}

// Float64 returns the next scripted value. An empty script yields 0 on every draw.
func (s *ScriptedSource) Float64() float64 {
	if len(s.Values) == 0 {
		s.Drawn++
		return 0
	}
	v := s.Values[s.Drawn%len(s.Values)]
	s.Drawn++
	return v
}

// WriteTempFile writes content to name inside a fresh temp dir and returns the absolute path.
// It fails the test immediately on error.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path, err := filepath.Abs(filepath.Join(t.TempDir(), name))
	require.NoError(t, err, "Failed to get absolute path for temp file")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write temp file")
	return path
}
