package mesh

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knotweave/pkg/geometry"
	"knotweave/pkg/knot"
)

func TestSquareGridDeterministic(t *testing.T) {
	c := Config{Width: 1.6, Height: 1.0}
	a := SquareGrid(c, rand.New(rand.NewSource(7)))
	b := SquareGrid(c, rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b, "same seed must produce the same mesh")

	other := SquareGrid(c, rand.New(rand.NewSource(8)))
	assert.NotEqual(t, a, other, "different seeds should vary the mesh")
}

func TestSquareGridSharesJunctions(t *testing.T) {
	strokes := SquareGrid(Config{Width: 1.0, Height: 1.0, JunctionsPerUnit: 6}, rand.New(rand.NewSource(1)))
	require.NotEmpty(t, strokes)

	// Interior junctions must be hit by several strokes with exactly
	// equal coordinates, or the weave would see them as separate.
	degree := make(map[geometry.Point]int)
	for _, s := range strokes {
		assert.NotEqual(t, s.A, s.B, "zero-length stroke generated")
		degree[s.A]++
		degree[s.B]++
	}
	shared := 0
	for _, d := range degree {
		if d > 1 {
			shared++
		}
	}
	assert.Greater(t, shared, 0, "no junctions shared between strokes")
}

func TestSquareGridWeaves(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	strokes := SquareGrid(Config{Width: 1.6, Height: 1.0}, r)
	require.NotEmpty(t, strokes)

	art, err := knot.Weave(strokes)
	require.NoError(t, err)
	assert.Greater(t, art.ThreadCount(), 0)

	total := 0
	for _, th := range art.Threads() {
		total += th.Samples() * 2
	}
	assert.Equal(t, 4*len(strokes), total, "port conservation")
}

func TestThin(t *testing.T) {
	strokes := SquareGrid(Config{Width: 1.6, Height: 1.0}, rand.New(rand.NewSource(11)))

	a := Thin(strokes, rand.New(rand.NewSource(5)))
	b := Thin(strokes, rand.New(rand.NewSource(5)))
	assert.Equal(t, a, b, "same seed must thin identically")

	// Thin only removes strokes; the survivors keep their order.
	assert.LessOrEqual(t, len(a), len(strokes))
	i := 0
	for _, s := range a {
		for i < len(strokes) && strokes[i] != s {
			i++
		}
		if i == len(strokes) {
			t.Fatalf("stroke %v-%v not in (or out of order with) the input", s.A, s.B)
		}
		i++
	}

	// The thinned mesh still weaves cleanly.
	if len(a) > 0 {
		_, err := knot.Weave(a)
		require.NoError(t, err)
	}
}
