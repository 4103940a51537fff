package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/aretw0/sprout/internal/testutils"
	"github.com/aretw0/sprout/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(sets ...string) (Options, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return Options{Sets: sets, Out: &out, Err: &errOut}, &out, &errOut
}

func TestLoadProfile_Precedence(t *testing.T) {
	path := testutils.WriteTempFile(t, "run.yaml", "preset: fern-2d\ngenerations: 2\n")

	opts, _, _ := testOptions("generations=1")
	opts.ConfigPath = path
	opts.Debug = true

	profile, err := LoadProfile(opts, "")
	require.NoError(t, err)
	assert.Equal(t, "fern-2d", profile.Preset)
	assert.Equal(t, 1, profile.Generations)
	assert.Equal(t, "debug", profile.LogLevel)

	profile, err = LoadProfile(opts, "koch-2d")
	require.NoError(t, err)
	assert.Equal(t, "koch-2d", profile.Preset)
}

func TestGrow_PrintsGenerations(t *testing.T) {
	opts, out, _ := testOptions("generations=2", "seed=1")
	require.NoError(t, Grow(context.Background(), opts, "koch-2d"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0: F", lines[0])
	assert.Equal(t, "1: F+F-F-F+F", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2: F+F-F-F+F+"))
}

func TestGrow_UnknownPreset(t *testing.T) {
	opts, _, _ := testOptions()
	err := Grow(context.Background(), opts, "cactus")
	assert.ErrorIs(t, err, domain.ErrPresetNotFound)
}

func TestGrow_CancelledRunExitsCleanly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	opts, out, _ := testOptions("seed=1")
	assert.NoError(t, Grow(ctx, opts, "koch-2d"))
	assert.Empty(t, out.String())
}

func TestDraw_InterruptedReportsSignal(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.mu.Lock()
	sc.sigVal = os.Interrupt
	sc.mu.Unlock()
	sc.Cancel()

	opts, out, errOut := testOptions("seed=1")
	assert.NoError(t, Draw(sc, opts, "koch-2d"))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), ">>> Interrupted by interrupt")
}

func TestGrow_CancelledWithoutSignalIsSilent(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.Cancel()

	opts, _, errOut := testOptions("seed=1")
	assert.NoError(t, Grow(sc, opts, "koch-2d"))
	assert.NotContains(t, errOut.String(), "Interrupted")
}

func TestDraw_JSON(t *testing.T) {
	opts, out, _ := testOptions("generations=1", "seed=3")
	require.NoError(t, Draw(context.Background(), opts, "koch-2d"))

	var doc struct {
		Preset    string      `json:"preset"`
		Seed      uint64      `json:"seed"`
		Dimension int         `json:"dimension"`
		Lines     [][]float64 `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "koch-2d", doc.Preset)
	assert.Equal(t, uint64(3), doc.Seed)
	assert.Equal(t, 2, doc.Dimension)
	assert.Len(t, doc.Lines, 5)
}

func TestDraw_TextAndMetrics(t *testing.T) {
	opts, out, errOut := testOptions("generations=1", "seed=3", "format=text")
	opts.Metrics = true
	require.NoError(t, Draw(context.Background(), opts, "koch-2d"))

	assert.Equal(t, 5, strings.Count(out.String(), "L "))
	assert.Contains(t, errOut.String(), `sprout_generations_total{grammar="koch-2d"} 1`)
	assert.Contains(t, errOut.String(), `sprout_lines_total{dimension="2d",grammar="koch-2d"} 5`)
}

func TestDraw_ThreeDimensional(t *testing.T) {
	opts, out, _ := testOptions("generations=2", "seed=9")
	require.NoError(t, Draw(context.Background(), opts, "plant-3d"))

	var doc struct {
		Dimension int         `json:"dimension"`
		Lines     [][]float64 `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, 3, doc.Dimension)
	for _, l := range doc.Lines {
		assert.Len(t, l, 6)
	}
}

func TestListPresets(t *testing.T) {
	opts, out, _ := testOptions()
	require.NoError(t, ListPresets(opts))
	for _, name := range []string{"plant-2d", "plant-3d", "fern-2d", "koch-2d"} {
		assert.Contains(t, out.String(), name)
	}
}

func TestInspect(t *testing.T) {
	opts, out, _ := testOptions()
	require.NoError(t, Inspect(opts, "plant-2d", true))
	assert.True(t, strings.HasPrefix(out.String(), "graph TD\n"))
	assert.Contains(t, out.String(), `s_X -- "p=0.9" --> s_F`)

	opts, out, _ = testOptions()
	require.NoError(t, Inspect(opts, "koch-2d", false))
	assert.Contains(t, out.String(), "koch-2d")
}

func TestDraw_RejectsNonFiniteGeometry(t *testing.T) {
	for _, set := range []string{"distance=inf", "angle=NaN", "declination=-inf"} {
		t.Run(set, func(t *testing.T) {
			opts, out, _ := testOptions("seed=1", set)
			err := Draw(context.Background(), opts, "koch-2d")
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
			assert.Empty(t, out.String())
		})
	}
}
