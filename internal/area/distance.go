package area

import "image"

// DistanceMap computes a multi-source BFS distance field over the area.
// Sources are the tiles of seeds that lie inside the area; if none do, the
// first tile of the area (row-major) seeds the field instead. It returns
// the forward map (tile to distance) and an inverse index (distance to the
// set of tiles at that distance) so "a tile at maximum distance" is an O(1)
// lookup after construction.
func (a *Area) DistanceMap(seeds *Area) (map[image.Point]int, map[int]*Area) {
	dist := make(map[image.Point]int, len(a.tiles))
	reverse := make(map[int]*Area)

	frontier := seeds.Intersect(a).Tiles()
	if len(frontier) == 0 && !a.Empty() {
		frontier = []image.Point{a.First()}
	}

	record := func(t image.Point, d int) {
		dist[t] = d
		r, ok := reverse[d]
		if !ok {
			r = New()
			reverse[d] = r
		}
		r.Add(t)
	}

	for _, t := range frontier {
		record(t, 0)
	}
	for d := 0; len(frontier) > 0; d++ {
		var next []image.Point
		for _, t := range frontier {
			for _, off := range neighbours {
				n := t.Add(off)
				if !a.Contains(n) {
					continue
				}
				if _, seen := dist[n]; seen {
					continue
				}
				record(n, d+1)
				next = append(next, n)
			}
		}
		frontier = next
	}
	return dist, reverse
}

// MaxDistance returns the largest distance present in a reverse index
// produced by DistanceMap, or -1 if the index is empty.
func MaxDistance(reverse map[int]*Area) int {
	max := -1
	for d := range reverse {
		if d > max {
			max = d
		}
	}
	return max
}
