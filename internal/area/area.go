// Package area implements set algebra over tile coordinates: union,
// intersection, subtraction, border computation and connected-component
// decomposition. Map generation repeats placement attempts from a fixed
// seed, so every enumeration of an Area is row-major (y, then x) - callers
// rely on that order being stable between runs.
package area

import (
	"image"
	"sort"

	"github.com/katalvlaran/lvlath/gridgraph"
)

// Adjacency offsets. All area operations (borders, components, distance
// fields) use edge-touching (4-connected) adjacency; diagonal contact does
// not join tiles.
var neighbours = [4]image.Point{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// Area is a mutable set of tile coordinates.
type Area struct {
	tiles map[image.Point]struct{}
}

// New returns an Area holding the given tiles.
func New(tiles ...image.Point) *Area {
	a := &Area{tiles: make(map[image.Point]struct{}, len(tiles))}
	for _, t := range tiles {
		a.tiles[t] = struct{}{}
	}
	return a
}

// Add inserts a tile.
func (a *Area) Add(t image.Point) { a.tiles[t] = struct{}{} }

// Erase removes a tile if present.
func (a *Area) Erase(t image.Point) { delete(a.tiles, t) }

// Contains reports whether t is in the area.
func (a *Area) Contains(t image.Point) bool {
	_, ok := a.tiles[t]
	return ok
}

// Empty reports whether the area holds no tiles.
func (a *Area) Empty() bool { return len(a.tiles) == 0 }

// Size returns the number of tiles.
func (a *Area) Size() int { return len(a.tiles) }

// Tiles returns every tile in row-major order (ascending y, then x).
func (a *Area) Tiles() []image.Point {
	out := make([]image.Point, 0, len(a.tiles))
	for t := range a.tiles {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// First returns the first tile in row-major order. The area must not be empty.
func (a *Area) First() image.Point { return a.Tiles()[0] }

// Clone returns an independent copy.
func (a *Area) Clone() *Area {
	c := &Area{tiles: make(map[image.Point]struct{}, len(a.tiles))}
	for t := range a.tiles {
		c.tiles[t] = struct{}{}
	}
	return c
}

// Union returns a new area holding tiles of a or o.
func (a *Area) Union(o *Area) *Area {
	c := a.Clone()
	for t := range o.tiles {
		c.tiles[t] = struct{}{}
	}
	return c
}

// Intersect returns a new area holding tiles present in both a and o.
func (a *Area) Intersect(o *Area) *Area {
	small, large := a, o
	if len(o.tiles) < len(a.tiles) {
		small, large = o, a
	}
	c := New()
	for t := range small.tiles {
		if large.Contains(t) {
			c.Add(t)
		}
	}
	return c
}

// Subtract returns a new area holding tiles of a not present in o.
func (a *Area) Subtract(o *Area) *Area {
	c := New()
	for t := range a.tiles {
		if !o.Contains(t) {
			c.Add(t)
		}
	}
	return c
}

// AddAll inserts every tile of o into a.
func (a *Area) AddAll(o *Area) {
	for t := range o.tiles {
		a.tiles[t] = struct{}{}
	}
}

// RemoveAll erases every tile of o from a.
func (a *Area) RemoveAll(o *Area) {
	for t := range o.tiles {
		delete(a.tiles, t)
	}
}

// Overlaps reports whether a and o share at least one tile.
func (a *Area) Overlaps(o *Area) bool {
	small, large := a, o
	if len(o.tiles) < len(a.tiles) {
		small, large = o, a
	}
	for t := range small.tiles {
		if large.Contains(t) {
			return true
		}
	}
	return false
}

// Border returns the tiles of a that touch at least one tile outside a.
func (a *Area) Border() *Area {
	b := New()
	for t := range a.tiles {
		for _, d := range neighbours {
			if !a.Contains(t.Add(d)) {
				b.Add(t)
				break
			}
		}
	}
	return b
}

// BorderOutside returns the tiles outside a that touch at least one tile of a.
func (a *Area) BorderOutside() *Area {
	b := New()
	for t := range a.tiles {
		for _, d := range neighbours {
			n := t.Add(d)
			if !a.Contains(n) {
				b.Add(n)
			}
		}
	}
	return b
}

// GetSubarea returns the tiles of a for which keep returns true.
func (a *Area) GetSubarea(keep func(image.Point) bool) *Area {
	s := New()
	for _, t := range a.Tiles() {
		if keep(t) {
			s.Add(t)
		}
	}
	return s
}

// Bounds returns the bounding rectangle of the area (zero rect if empty).
func (a *Area) Bounds() image.Rectangle {
	var r image.Rectangle
	first := true
	for t := range a.tiles {
		if first {
			r = image.Rectangle{Min: t, Max: t.Add(image.Pt(1, 1))}
			first = false
			continue
		}
		r = r.Union(image.Rectangle{Min: t, Max: t.Add(image.Pt(1, 1))})
	}
	return r
}

// ConnectedComponents decomposes the area into maximal 4-connected
// components, returned in row-major order of their first tile.
func (a *Area) ConnectedComponents() []*Area {
	if a.Empty() {
		return nil
	}

	// Rasterise onto the bounding box and let gridgraph do the flood fill.
	bounds := a.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
	}
	for t := range a.tiles {
		grid[t.Y-bounds.Min.Y][t.X-bounds.Min.X] = 1
	}

	gg, err := gridgraph.NewGridGraph(grid, gridgraph.GridOptions{
		LandThreshold: 1,
		Conn:          gridgraph.Conn4,
	})
	if err != nil {
		// Non-empty area always yields a rectangular non-empty grid.
		panic("area: connected components over invalid grid: " + err.Error())
	}

	var out []*Area
	for _, comp := range gg.ConnectedComponents() {
		c := New()
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			c.Add(image.Pt(x+bounds.Min.X, y+bounds.Min.Y))
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].First(), out[j].First()
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}
