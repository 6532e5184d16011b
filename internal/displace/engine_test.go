package displace

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metrolab/displace/internal/pointset"
)

func TestEngine_Expand_Counts(t *testing.T) {
	t.Parallel()

	eng := NewEngine(Default())
	points := []pointset.Point{
		{Label: "A1", X: 1, Y: 2, Z: 3},
		{Label: "B150", X: 4, Y: 5, Z: 6},
		{Label: "nodigits", X: 7, Y: 8, Z: 9},
	}

	// N originals + N*M derived with originals kept, N*M without.
	const m = 7
	assert.Len(t, eng.Expand(points, true), len(points)+len(points)*m)
	assert.Len(t, eng.Expand(points, false), len(points)*m)
}

func TestEngine_Expand_Empty(t *testing.T) {
	t.Parallel()

	eng := NewEngine(Default())
	assert.Empty(t, eng.Expand(nil, true))
	assert.Empty(t, eng.Expand([]pointset.Point{}, false))
}

func TestEngine_Expand_Ordering(t *testing.T) {
	t.Parallel()

	eng := NewEngine(Default())
	points := []pointset.Point{
		{Label: "A1", X: 0, Y: 0, Z: 0},
		{Label: "A2", X: 10, Y: 10, Z: 10},
	}
	out := eng.Expand(points, true)
	require.Len(t, out, 16)

	wantLabels := []string{
		"A1", "A1_1", "A1_2", "A1_3", "A1_4", "A1_5", "A1_6", "A1_7",
		"A2", "A2_1", "A2_2", "A2_3", "A2_4", "A2_5", "A2_6", "A2_7",
	}
	got := make([]string, len(out))
	for i, e := range out {
		got[i] = e.Label
	}
	if diff := cmp.Diff(wantLabels, got); diff != "" {
		t.Errorf("label order mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_ExpandPoint_Offsets(t *testing.T) {
	t.Parallel()

	eng := NewEngine(Default())
	src := pointset.Point{Label: "A1", X: 100, Y: 200, Z: 3}
	out := eng.ExpandPoint(src, true)
	require.Len(t, out, 8)

	// Original is verbatim and tagged as such.
	assert.Equal(t, src, out[0].Point)
	assert.False(t, out[0].Derived)
	assert.Equal(t, Key(1), out[0].Key)
	assert.Equal(t, 0, out[0].Category, "key 1 resolves to BLUE")

	// Derived points are plain componentwise sums of source and entry.
	set := eng.Table().Categories[0].Set
	for i, e := range out[1:] {
		assert.True(t, e.Derived)
		assert.Equal(t, src.Label+set[i].Suffix, e.Label)
		assert.Equal(t, src.X+set[i].DX, e.X)
		assert.Equal(t, src.Y+set[i].DY, e.Y)
		assert.Equal(t, src.Z+set[i].DZ, e.Z)
	}
}

func TestEngine_ExpandPoint_FallbackCategory(t *testing.T) {
	t.Parallel()

	eng := NewEngine(Default())

	t.Run("digit-free label", func(t *testing.T) {
		t.Parallel()
		out := eng.ExpandPoint(pointset.Point{Label: "nodigits"}, true)
		require.NotEmpty(t, out)
		assert.Equal(t, NoKey, out[0].Key)
		assert.Equal(t, 1, out[0].Category, "fallback is RED")
	})

	t.Run("unmatched key", func(t *testing.T) {
		t.Parallel()
		out := eng.ExpandPoint(pointset.Point{Label: "X9999"}, true)
		require.NotEmpty(t, out)
		assert.Equal(t, 1, out[0].Category)
	})
}

func TestEngine_Expand_DuplicateLabels(t *testing.T) {
	t.Parallel()

	// Duplicate input labels are processed independently, producing
	// duplicate prefixed output labels.
	eng := NewEngine(Default())
	points := []pointset.Point{
		{Label: "A1", X: 0},
		{Label: "A1", X: 50},
	}
	out := eng.Expand(points, true)
	require.Len(t, out, 16)
	assert.Equal(t, out[1].Label, out[9].Label)
	assert.NotEqual(t, out[1].X, out[9].X)
}

func TestEngine_Expand_MirroredRadials(t *testing.T) {
	t.Parallel()

	eng := NewEngine(Default())
	blue := eng.ExpandPoint(pointset.Point{Label: "B1"}, false)
	red := eng.ExpandPoint(pointset.Point{Label: "R100"}, false)
	require.Len(t, blue, 7)
	require.Len(t, red, 7)

	for i := 0; i < 4; i++ {
		assert.Equal(t, blue[i].X, red[i].X, "diagonal %d", i)
		assert.Equal(t, blue[i].Y, red[i].Y, "diagonal %d", i)
	}
	for i := 4; i < 7; i++ {
		assert.Equal(t, blue[i].X, red[i].X, "radial %d x", i)
		assert.Equal(t, blue[i].Y, -red[i].Y, "radial %d y mirrored", i)
	}
}
