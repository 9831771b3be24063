package area_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dlshcbmuipmam/watergen/internal/area"
)

func TestDistanceMapFromSeeds(t *testing.T) {
	corridor := rect(0, 0, 5, 1)
	dist, reverse := corridor.DistanceMap(area.New(image.Pt(0, 0)))

	require.Len(t, dist, 5)
	for x := 0; x < 5; x++ {
		require.Equal(t, x, dist[image.Pt(x, 0)])
	}
	require.Equal(t, 4, area.MaxDistance(reverse))
	require.Equal(t, image.Pt(4, 0), reverse[4].First())
	require.Equal(t, 1, reverse[0].Size())
}

func TestDistanceMapMultipleSeeds(t *testing.T) {
	corridor := rect(0, 0, 5, 1)
	seeds := area.New(image.Pt(0, 0), image.Pt(4, 0))
	dist, reverse := corridor.DistanceMap(seeds)

	// Both ends are sources, so the middle tile is the farthest point.
	require.Equal(t, 2, area.MaxDistance(reverse))
	require.Equal(t, 2, dist[image.Pt(2, 0)])
	require.Equal(t, 0, dist[image.Pt(4, 0)])
}

func TestDistanceMapFallbackSeed(t *testing.T) {
	corridor := rect(0, 0, 4, 1)

	// Seeds outside the area fall back to the first tile in row-major order.
	dist, reverse := corridor.DistanceMap(area.New(image.Pt(9, 9)))
	require.Equal(t, 0, dist[image.Pt(0, 0)])
	require.Equal(t, 3, area.MaxDistance(reverse))

	dist, _ = corridor.DistanceMap(area.New())
	require.Equal(t, 0, dist[image.Pt(0, 0)])
}

func TestDistanceMapCoversOnlyReachableTiles(t *testing.T) {
	split := rect(0, 0, 2, 1)
	split.Add(image.Pt(5, 0))

	dist, _ := split.DistanceMap(area.New(image.Pt(0, 0)))
	require.Len(t, dist, 2)
	_, ok := dist[image.Pt(5, 0)]
	require.False(t, ok)
}

func TestMaxDistanceEmpty(t *testing.T) {
	require.Equal(t, -1, area.MaxDistance(map[int]*area.Area{}))
}
