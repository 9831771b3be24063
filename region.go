package watergen

import (
	"image"
	"math/rand"
	"sync"

	"github.com/dlshcbmuipmam/watergen/internal/area"
)

// RegionType tells roughly what a region is for. Water routing only cares
// whether a region is a starting region (those get shipyards) but the host
// generator distinguishes more.
type RegionType string

const (
	RegionPlayerStart RegionType = "player-start"
	RegionCPUStart    RegionType = "cpu-start"
	RegionTreasure    RegionType = "treasure"
	RegionJunction    RegionType = "junction"
	RegionWater       RegionType = "water"
)

// Region owns a set of map tiles and the placement bookkeeping over them.
//
// area is every tile the region considers its own, areaPossible the subset
// still open for placement and freePaths the subset already guaranteed
// reachable. areaPossible and freePaths are always subsets of area.
//
// mu guards the three tile sets. Phases for different regions run
// concurrently; any mutation of another region's sets must hold that
// region's lock (acquired before touching one's own, see WaterZone.Process).
type Region struct {
	mu sync.Mutex

	id      int
	typ     RegionType
	terrain Terrain
	pos     image.Point

	m   *TileMap
	rng *rand.Rand

	area         *area.Area
	areaPossible *area.Area
	freePaths    *area.Area

	// coast holds the region's tiles adjacent to the water zone, filled in
	// by the water-adoption phase. Empty means "no water access possible".
	coast *area.Area

	towns   int
	manager *ObjectManager
}

// NewRegion returns an empty region. The rng seed combines the map seed and
// region id so each region draws a reproducible, independent stream.
func NewRegion(m *TileMap, id int, typ RegionType, ter Terrain, seed int64) *Region {
	r := &Region{
		id:           id,
		typ:          typ,
		terrain:      ter,
		m:            m,
		rng:          rand.New(rand.NewSource(seed + int64(id))),
		area:         area.New(),
		areaPossible: area.New(),
		freePaths:    area.New(),
		coast:        area.New(),
	}
	r.manager = &ObjectManager{r: r, m: m}
	return r
}

// ID returns the region id.
func (r *Region) ID() int { return r.id }

// Type returns the region type.
func (r *Region) Type() RegionType { return r.typ }

// TerrainType returns the terrain this region paints.
func (r *Region) TerrainType() Terrain { return r.terrain }

// Pos returns the region's canonical position tile.
func (r *Region) Pos() image.Point { return r.pos }

// SetPos sets the canonical position tile.
func (r *Region) SetPos(t image.Point) { r.pos = t }

// Rand returns the region's deterministic random generator.
func (r *Region) Rand() *rand.Rand { return r.rng }

// Manager returns the region's object manager.
func (r *Region) Manager() *ObjectManager { return r.manager }

// TownCount returns how many towns the town-placement phase put here.
func (r *Region) TownCount() int { return r.towns }

// SetTownCount records the region's town count.
func (r *Region) SetTownCount(n int) { r.towns = n }

// Assign hands the region its tile set: ownership and Possible occupancy
// are marked on the map and the whole area becomes placeable.
func (r *Region) Assign(a *area.Area) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.area = a.Clone()
	r.areaPossible = a.Clone()
	r.freePaths = area.New()
	for _, t := range a.Tiles() {
		r.m.SetZoneID(t, r.id)
		r.m.SetOccupied(t, TilePossible)
	}
	if !a.Empty() {
		r.pos = a.First()
	}
}

// Area returns a snapshot of the region's tile set.
func (r *Region) Area() *area.Area {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.area.Clone()
}

// AreaPossible returns a snapshot of the still-placeable tiles.
func (r *Region) AreaPossible() *area.Area {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.areaPossible.Clone()
}

// FreePaths returns a snapshot of the guaranteed-reachable tiles.
func (r *Region) FreePaths() *area.Area {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.freePaths.Clone()
}

// Coast returns a snapshot of the region's water-adjacent tiles.
func (r *Region) Coast() *area.Area {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.coast.Clone()
}

// AdoptCoast records which of the region's tiles border the given water
// area. Run once by the water-adoption phase, before water routing.
func (r *Region) AdoptCoast(water *area.Area) {
	shore := water.BorderOutside()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.coast = r.area.GetSubarea(shore.Contains)
}

// InitFreeTiles makes sure the region has a reachable anchor: freePaths is
// clipped to the current area and seeded with the position tile when empty.
func (r *Region) InitFreeTiles() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.freePaths = r.freePaths.Intersect(r.area)
	if r.freePaths.Empty() && r.area.Contains(r.pos) {
		r.freePaths.Add(r.pos)
	}
	for _, t := range r.freePaths.Tiles() {
		if r.m.IsPossible(t) {
			r.m.SetOccupied(t, TileFree)
		}
	}
}

// SearchPath looks for a path from the region's reachable tiles to any
// target tile, walking over areaPossible and freePaths.
func (r *Region) SearchPath(target *area.Area) Path {
	r.mu.Lock()
	defer r.mu.Unlock()
	return searchPath(r.areaPossible.Union(r.freePaths), r.freePaths, target)
}

// SearchPathTo is SearchPath for a single tile.
func (r *Region) SearchPathTo(t image.Point) Path {
	return r.SearchPath(area.New(t))
}

// ConnectPath commits a found path: its tiles join freePaths, leave
// areaPossible and are marked Free on the map.
func (r *Region) ConnectPath(p Path) {
	if !p.valid {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.freePaths.AddAll(p.tiles)
	r.areaPossible.RemoveAll(p.tiles)
	for _, t := range p.tiles.Tiles() {
		if r.m.IsPossible(t) {
			r.m.SetOccupied(t, TileFree)
		}
	}
}
