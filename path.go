package watergen

import (
	"image"

	"github.com/dlshcbmuipmam/watergen/internal/area"
)

// Path is the result of a path search. tiles holds the newly claimed tiles
// between the start frontier and the target (frontier tiles excluded), so
// committing a path only touches tiles the search actually added.
type Path struct {
	tiles *area.Area
	valid bool
}

// Valid reports whether the search reached its target.
func (p Path) Valid() bool { return p.valid }

// Tiles returns a snapshot of the path's tiles.
func (p Path) Tiles() *area.Area {
	if p.tiles == nil {
		return area.New()
	}
	return p.tiles.Clone()
}

var pathSteps = [4]image.Point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// searchPath runs a multi-source BFS from the tiles of `from` towards any
// tile of `target`, stepping only on tiles of `searchable` or `target`.
// Seeds and neighbours expand in row-major order, so identical inputs
// always yield the identical path.
func searchPath(searchable, from, target *area.Area) Path {
	if from.Empty() || target.Empty() {
		return Path{}
	}
	if from.Overlaps(target) {
		return Path{tiles: area.New(), valid: true}
	}

	parent := make(map[image.Point]image.Point)
	frontier := from.Tiles()
	seen := area.New(frontier...)

	for len(frontier) > 0 {
		var next []image.Point
		for _, t := range frontier {
			for _, d := range pathSteps {
				n := t.Add(d)
				if seen.Contains(n) {
					continue
				}
				if !searchable.Contains(n) && !target.Contains(n) {
					continue
				}
				parent[n] = t
				if target.Contains(n) {
					return Path{tiles: backtrack(n, from, parent), valid: true}
				}
				seen.Add(n)
				next = append(next, n)
			}
		}
		frontier = next
	}
	return Path{}
}

// backtrack walks parent links from the reached tile until it falls back
// into the start frontier, collecting the tiles in between.
func backtrack(end image.Point, from *area.Area, parent map[image.Point]image.Point) *area.Area {
	tiles := area.New()
	for t := end; !from.Contains(t); {
		tiles.Add(t)
		p, ok := parent[t]
		if !ok {
			break
		}
		t = p
	}
	return tiles
}
