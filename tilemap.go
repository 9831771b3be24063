package watergen

import (
	"image"
	"math"

	"github.com/boljen/go-bitmap"

	"github.com/dlshcbmuipmam/watergen/internal/area"
)

// Terrain identifies the surface type painted on a tile.
type Terrain uint8

const (
	TerrainNone Terrain = iota
	TerrainWater
	TerrainGrass
	TerrainDirt
	TerrainSand
	TerrainRock
)

// Occupancy is the placement state of a tile.
//
// Tiles start Possible (claimable by placement), become Free once a path
// guarantees they stay traversable, Blocked when placement is forbidden and
// Used when an object sits on them.
type Occupancy uint8

const (
	TilePossible Occupancy = iota
	TileFree
	TileBlocked
	TileUsed
)

// noZone marks tiles not owned by any region yet.
const noZone = -1

// TileMap holds per-tile terrain, zone ownership, occupancy state and
// object proximity for the whole generated map.
type TileMap struct {
	bounds image.Rectangle

	terrain []Terrain
	zone    []int
	occ     []Occupancy

	// objects marks tiles consumed by placed objects; objDist caches, per
	// tile, the distance to the nearest placed object tile.
	objects bitmap.Bitmap
	objDist []float64
}

// NewTileMap returns a map of width w and height h with every tile
// unowned, unpainted and Possible.
func NewTileMap(w, h int) *TileMap {
	size := w * h
	m := &TileMap{
		bounds:  image.Rect(0, 0, w, h),
		terrain: make([]Terrain, size),
		zone:    make([]int, size),
		occ:     make([]Occupancy, size),
		objects: bitmap.New(size),
		objDist: make([]float64, size),
	}
	for i := range m.zone {
		m.zone[i] = noZone
		m.objDist[i] = math.Inf(1)
	}
	return m
}

// Bounds returns the map rectangle.
func (m *TileMap) Bounds() image.Rectangle { return m.bounds }

// IsOnMap reports whether t lies within the map.
func (m *TileMap) IsOnMap(t image.Point) bool { return t.In(m.bounds) }

func (m *TileMap) index(t image.Point) int {
	return t.Y*m.bounds.Dx() + t.X
}

// Terrain returns the terrain at t (TerrainNone off-map).
func (m *TileMap) Terrain(t image.Point) Terrain {
	if !m.IsOnMap(t) {
		return TerrainNone
	}
	return m.terrain[m.index(t)]
}

// SetTerrain paints terrain onto a single tile.
func (m *TileMap) SetTerrain(t image.Point, ter Terrain) {
	if m.IsOnMap(t) {
		m.terrain[m.index(t)] = ter
	}
}

// PaintTerrain paints terrain onto every tile of a.
func (m *TileMap) PaintTerrain(a *area.Area, ter Terrain) {
	for _, t := range a.Tiles() {
		m.SetTerrain(t, ter)
	}
}

// ZoneID returns the owning region id of t, or noZone.
func (m *TileMap) ZoneID(t image.Point) int {
	if !m.IsOnMap(t) {
		return noZone
	}
	return m.zone[m.index(t)]
}

// SetZoneID records region id as the owner of t.
func (m *TileMap) SetZoneID(t image.Point, id int) {
	if m.IsOnMap(t) {
		m.zone[m.index(t)] = id
	}
}

// Occupancy returns the occupancy state of t (TileBlocked off-map).
func (m *TileMap) Occupancy(t image.Point) Occupancy {
	if !m.IsOnMap(t) {
		return TileBlocked
	}
	return m.occ[m.index(t)]
}

// SetOccupied sets the occupancy state of t.
func (m *TileMap) SetOccupied(t image.Point, o Occupancy) {
	if m.IsOnMap(t) {
		m.occ[m.index(t)] = o
	}
}

// IsPossible reports whether t is on the map and still Possible.
func (m *TileMap) IsPossible(t image.Point) bool {
	return m.IsOnMap(t) && m.occ[m.index(t)] == TilePossible
}

// HasObject reports whether a placed object consumes t.
func (m *TileMap) HasObject(t image.Point) bool {
	return m.IsOnMap(t) && m.objects.Get(m.index(t))
}

// NearestObjectDistance returns the distance from t to the closest placed
// object tile (+Inf when nothing has been placed yet).
func (m *TileMap) NearestObjectDistance(t image.Point) float64 {
	if !m.IsOnMap(t) {
		return math.Inf(1)
	}
	return m.objDist[m.index(t)]
}

// registerObject marks the object's tiles in the placed-object mask.
func (m *TileMap) registerObject(a *area.Area) {
	for _, t := range a.Tiles() {
		if m.IsOnMap(t) {
			m.objects.Set(m.index(t), true)
		}
	}
}

// updateObjectDistances refreshes the per-tile nearest-object distances
// with the tiles of a newly placed object, so later placements can keep
// clear of it.
func (m *TileMap) updateObjectDistances(a *area.Area) {
	tiles := a.Tiles()
	if len(tiles) == 0 {
		return
	}
	for y := m.bounds.Min.Y; y < m.bounds.Max.Y; y++ {
		for x := m.bounds.Min.X; x < m.bounds.Max.X; x++ {
			p := image.Pt(x, y)
			i := m.index(p)
			for _, t := range tiles {
				if d := tileDist(p, t); d < m.objDist[i] {
					m.objDist[i] = d
				}
			}
		}
	}
}

// tileDist is the straight-line distance between two tiles.
func tileDist(a, b image.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
