package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.Uint64N(1000), b.Uint64N(1000), "draw %d", i)
		require.Equal(t, a.Bool(), b.Bool(), "coin %d", i)
	}
}

func TestRNGDifferentSeedsDiverge(t *testing.T) {
	a := NewRNG(1)
	b := NewRNG(2)
	same := true
	for i := 0; i < 16; i++ {
		if a.Uint64N(1<<32) != b.Uint64N(1<<32) {
			same = false
		}
	}
	require.False(t, same, "seeds 1 and 2 produced identical streams")
}

func TestRNGZeroBounds(t *testing.T) {
	r := NewRNG(7)
	require.Zero(t, r.Uint64N(0))
	require.Zero(t, r.IntN(0))
	require.Zero(t, r.IntN(-3))
	for i := 0; i < 32; i++ {
		require.Less(t, r.Uint64N(5), uint64(5))
		require.GreaterOrEqual(t, r.Int64(), int64(0))
	}
}

func TestRNGImplementsSource(t *testing.T) {
	var src Source = NewRNG(3)
	require.NotNil(t, src)
}
