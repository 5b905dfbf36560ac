package gen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/commtree/core"
	"github.com/katalvlaran/commtree/gen"
)

// TestGeneratorSizes checks vertex and edge counts for every generator.
func TestGeneratorSizes(t *testing.T) {
	cases := []struct {
		name  string
		build func(int) (*core.Graph, error)
		n     int
		wantV int
		wantE int
	}{
		{"Complete", gen.Complete, 5, 5, 10},
		{"Complete single", gen.Complete, 1, 1, 0},
		{"Path", gen.Path, 4, 4, 3},
		{"Cycle", gen.Cycle, 5, 5, 5},
		{"Star", gen.Star, 5, 5, 4},
		{"TwoCliquesBridge", gen.TwoCliquesBridge, 4, 8, 13},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.build(tc.n)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount(), "vertex count")
			require.Equal(t, tc.wantE, g.EdgeCount(), "edge count")
		})
	}
}

// TestGeneratorMinimums checks the too-few-vertices guard of every
// generator.
func TestGeneratorMinimums(t *testing.T) {
	cases := []struct {
		name  string
		build func(int) (*core.Graph, error)
		n     int
	}{
		{"Complete", gen.Complete, 0},
		{"Path", gen.Path, 0},
		{"Cycle", gen.Cycle, 2},
		{"Star", gen.Star, 1},
		{"TwoCliquesBridge", gen.TwoCliquesBridge, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build(tc.n)
			require.ErrorIs(t, err, gen.ErrTooFewVertices)
		})
	}
}

// TestTwoCliquesBridge_Degrees checks that the bridge endpoints carry
// the two highest degrees (the key-regulator fixture property).
func TestTwoCliquesBridge_Degrees(t *testing.T) {
	g, err := gen.TwoCliquesBridge(5)
	require.NoError(t, err)

	degs := g.Degrees()
	for i, d := range degs {
		want := 4
		if i == 4 || i == 5 { // bridge endpoints v4, v5
			want = 5
		}
		require.Equal(t, want, d, "degree of v%d", i)
	}
}

// TestDeterminism checks that repeated builds are identical.
func TestDeterminism(t *testing.T) {
	a, err := gen.TwoCliquesBridge(4)
	require.NoError(t, err)
	b, err := gen.TwoCliquesBridge(4)
	require.NoError(t, err)

	require.Equal(t, a.Labels(), b.Labels())
	require.Equal(t, a.EdgeLabels(), b.EdgeLabels())
}
