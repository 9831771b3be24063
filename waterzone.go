package watergen

import (
	"fmt"
	"image"
	"sync"

	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"

	"github.com/dlshcbmuipmam/watergen/internal/area"
)

// Lake is one connected component of the water region. Area and the
// distance fields are computed once during lake collection and never
// recomputed: placements made later invalidate them beyond the guarantee
// that at least one lake tile stays in the water region's freePaths.
type Lake struct {
	// Area holds the lake's tiles.
	Area *area.Area

	// DistanceMap maps each lake tile to its BFS distance from the
	// region's reachable tiles at collection time; ReverseDistanceMap is
	// the inverse index (distance to tiles at that distance).
	DistanceMap        map[image.Point]int
	ReverseDistanceMap map[int]*area.Area

	// NeighbourZones groups the lake's outside border by owning region id.
	NeighbourZones map[int]*area.Area

	// KeepConnections lists region ids whose adjacency to this lake is a
	// designed water link. Adjacent regions absent from this set get their
	// border tiles blocked by WaterRoute.
	KeepConnections mapset.Set[int]
}

// RouteInfo describes a successful crossing placement. The zero value
// signals failure or that no route was requested.
type RouteInfo struct {
	// Blocked is the crossing object's committed footprint.
	Blocked *area.Area
	// Visitable is the object's single visitable tile.
	Visitable image.Point
	// Boarding is the chosen land tile the crossing departs from.
	Boarding image.Point
	// Water holds the water tile(s) the crossing occupies.
	Water *area.Area
}

// Valid reports whether the route describes an actual placement.
func (ri RouteInfo) Valid() bool { return ri.Blocked != nil && !ri.Blocked.Empty() }

// WaterZone carves a water region into the map, partitions it into lakes
// and connects land regions to them with boats and shipyards.
//
// mu guards lakes and lakeIndex: external readers (diagnostics, other
// regions' route planning) query lakes while later phases of this region
// still run. Exported methods lock; unexported helpers assume mu is held.
type WaterZone struct {
	mu sync.Mutex

	m       *TileMap
	region  *Region
	regions []*Region
	catalog Catalog
	cfg     Config

	lakes     []Lake
	lakeIndex map[image.Point]int
}

// NewWaterZone wires a water zone over its region. regions must hold every
// region of the map including the water region itself.
func NewWaterZone(m *TileMap, water *Region, regions []*Region, catalog Catalog, cfg Config) (*WaterZone, error) {
	if water.Type() != RegionWater {
		return nil, errors.Errorf("watergen: region %d is %q, not a water region", water.ID(), water.Type())
	}
	if catalog == nil {
		return nil, errors.New("watergen: nil object catalog")
	}
	return &WaterZone{
		m:         m,
		region:    water,
		regions:   regions,
		catalog:   catalog,
		cfg:       cfg,
		lakeIndex: map[image.Point]int{},
	}, nil
}

// Region returns the underlying water region.
func (w *WaterZone) Region() *Region { return w.region }

// Process claims the water region's tiles, paints its terrain, absorbs
// stray water tiles from other regions and collects lakes. It must run
// after every region's town placement and water adoption (see Schedule).
//
// A painted tile reporting the wrong terrain afterwards is an upstream
// contract breach and panics rather than returning an error.
func (w *WaterZone) Process() {
	for _, t := range w.region.Area().Tiles() {
		w.m.SetZoneID(t, w.region.ID())
		w.m.SetOccupied(t, TilePossible)
	}

	w.m.PaintTerrain(w.region.Area(), w.region.TerrainType())

	for _, t := range w.region.Area().Tiles() {
		if !w.m.IsOnMap(t) {
			panic(fmt.Sprintf("watergen: water tile %v is off the map", t))
		}
		if got := w.m.Terrain(t); got != w.region.TerrainType() {
			panic(fmt.Sprintf("watergen: tile %v painted %d, want %d", t, got, w.region.TerrainType()))
		}
	}

	w.absorbSpilledWater()

	if !w.region.Area().Contains(w.region.Pos()) {
		w.region.SetPos(w.region.Area().First())
	}

	w.region.InitFreeTiles()

	w.mu.Lock()
	w.collectLakes()
	w.mu.Unlock()
}

// absorbSpilledWater reassigns to the water region any tile of another
// region whose terrain already matches the water terrain (terrain painting
// earlier in the pipeline can spill over region edges). Each donor region
// mutates only under its own lock, released before this region locks -
// the two locks are never held together, so no ordering cycle can form.
func (w *WaterZone) absorbSpilledWater() {
	for _, other := range w.regions {
		if other.ID() == w.region.ID() {
			continue
		}

		taken := area.New()
		other.mu.Lock()
		for _, t := range other.area.Tiles() {
			if w.m.Terrain(t) == w.region.TerrainType() {
				other.area.Erase(t)
				other.areaPossible.Erase(t)
				taken.Add(t)
			}
		}
		other.mu.Unlock()

		if taken.Empty() {
			continue
		}
		w.region.mu.Lock()
		w.region.area.AddAll(taken)
		w.region.areaPossible.AddAll(taken)
		w.region.mu.Unlock()
		for _, t := range taken.Tiles() {
			w.m.SetZoneID(t, w.region.ID())
			w.m.SetOccupied(t, TilePossible)
		}
	}
}

// collectLakes decomposes the water area into connected components and
// fills in the per-lake distance fields, neighbour borders and the
// tile-to-lake index. Caller holds w.mu.
func (w *WaterZone) collectLakes() {
	w.lakes = nil
	w.lakeIndex = map[image.Point]int{}

	free := w.region.FreePaths()
	for lakeID, comp := range w.region.Area().ConnectedComponents() {
		dist, reverse := comp.DistanceMap(free)
		lake := Lake{
			Area:               comp,
			DistanceMap:        dist,
			ReverseDistanceMap: reverse,
			NeighbourZones:     map[int]*area.Area{},
			KeepConnections:    mapset.New[int](),
		}

		for _, t := range comp.BorderOutside().Tiles() {
			if !w.m.IsOnMap(t) {
				continue
			}
			id := w.m.ZoneID(t)
			if id == noZone {
				continue
			}
			nz, ok := lake.NeighbourZones[id]
			if !ok {
				nz = area.New()
				lake.NeighbourZones[id] = nz
			}
			nz.Add(t)
			// Track border tiles too so Dump can answer for them. Lake
			// tiles take precedence when two lakes share a border tile.
			if _, taken := w.lakeIndex[t]; !taken {
				w.lakeIndex[t] = lakeID
			}
		}

		for _, t := range comp.Tiles() {
			w.lakeIndex[t] = lakeID
		}

		// Each lake keeps at least one guaranteed-reachable tile so later
		// pathfinding has an anchor even before any crossing is placed.
		if !comp.Overlaps(free) {
			anchor := lake.ReverseDistanceMap[area.MaxDistance(lake.ReverseDistanceMap)].First()
			w.region.mu.Lock()
			w.region.freePaths.Add(anchor)
			w.region.mu.Unlock()
			free.Add(anchor)
		}

		w.lakes = append(w.lakes, lake)
	}
}

// GetLakes returns a read-only snapshot of the collected lakes.
func (w *WaterZone) GetLakes() []Lake {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Lake, len(w.lakes))
	copy(out, w.lakes)
	return out
}

// WaterKeepConnection marks the lake adjacent to both regions as an
// intentional water link and reports whether such a lake exists. The
// connection-design phase must call this before WaterRoute runs for either
// region: WaterRoute severs any adjacency not marked here.
func (w *WaterZone) WaterKeepConnection(idA, idB int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i := range w.lakes {
		lake := &w.lakes[i]
		_, hasA := lake.NeighbourZones[idA]
		_, hasB := lake.NeighbourZones[idB]
		if hasA && hasB {
			lake.KeepConnections.Put(idA)
			lake.KeepConnections.Put(idB)
			return true
		}
	}
	return false
}

// Dump reports what the water zone knows about a tile:
//
//	'?'  untracked by any lake
//	'0'..'9'  first digit of the owning region id, for a border segment
//	          whose connection is not preserved
//	'='  border segment whose connection is preserved
//	'~'  open water interior
func (w *WaterZone) Dump(t image.Point) byte {
	w.mu.Lock()
	defer w.mu.Unlock()

	idx, ok := w.lakeIndex[t]
	if !ok {
		return '?'
	}
	lake := w.lakes[idx]
	for _, id := range sortedKeys(lake.NeighbourZones) {
		if !lake.NeighbourZones[id].Contains(t) {
			continue
		}
		if lake.KeepConnections.Has(id) {
			return '='
		}
		return fmt.Sprintf("%d", id)[0]
	}
	return '~'
}

func sortedKeys(m map[int]*area.Area) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}
