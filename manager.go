package watergen

import (
	"image"

	"github.com/dlshcbmuipmam/watergen/internal/area"
)

// ObjectManager negotiates object placement for one region: it finds a
// position where a footprint fits, verifies the object can be pathed to,
// and commits placements into the map and the region's tile sets.
type ObjectManager struct {
	r *Region
	m *TileMap
}

// AddGuard attaches a monster guard of the given strength to the object.
// Strength 0 or below leaves the object unguarded.
func (om *ObjectManager) AddGuard(obj *Object, strength int) bool {
	if strength <= 0 {
		return false
	}
	obj.guarded = true
	obj.guardStrength = strength
	return true
}

// PlaceAndConnectObject tries every tile of search, in row-major order, as
// the object's visitable position. A candidate is accepted when the full
// footprint fits on still-possible tiles of the region, score does not
// reject it (negative score means invalid, anything else is uniformly
// acceptable) and a path from the region's reachable tiles to the object
// exists. The first acceptable candidate wins; no better-placement search
// happens beyond that. Returns the connecting path.
func (om *ObjectManager) PlaceAndConnectObject(search *area.Area, obj *Object, score func(image.Point) float64) (Path, bool) {
	possible := om.r.AreaPossible()
	free := om.r.FreePaths()
	walkable := possible.Union(free)

	for _, t := range search.Tiles() {
		obj.SetPosition(t)
		if !om.fits(obj, possible) {
			continue
		}
		if score != nil && score(t) < 0 {
			continue
		}
		// The search may finish ON an approach tile (a boat is boarded at
		// its own tile) but may not walk through the footprint.
		footprint := obj.Area()
		path := searchPath(
			walkable.Subtract(footprint),
			free.Subtract(footprint),
			obj.approachTiles(),
		)
		if !path.valid {
			continue
		}
		return path, true
	}
	return Path{}, false
}

// fits reports whether every footprint tile is on the map and still open
// for placement by this region.
func (om *ObjectManager) fits(obj *Object, possible *area.Area) bool {
	for _, t := range obj.Area().Tiles() {
		if !om.m.IsOnMap(t) || !om.m.IsPossible(t) || !possible.Contains(t) {
			return false
		}
	}
	return true
}

// PlaceObject commits the object at its current position: footprint tiles
// become Used (visitable and guard) or Blocked, leave the region's
// placeable set, and join the placed-object mask. When updateDistances is
// set the map's object-proximity index refreshes too.
func (om *ObjectManager) PlaceObject(obj *Object, updateDistances bool) {
	footprint := obj.Area()

	for _, t := range footprint.Tiles() {
		om.m.SetOccupied(t, TileBlocked)
	}
	om.m.SetOccupied(obj.VisitablePosition(), TileUsed)
	if obj.guarded {
		om.m.SetOccupied(obj.VisitablePosition().Add(guardOffset), TileUsed)
	}

	om.r.mu.Lock()
	om.r.areaPossible.RemoveAll(footprint)
	om.r.freePaths.RemoveAll(footprint)
	om.r.mu.Unlock()

	om.m.registerObject(footprint)
	if updateDistances {
		om.m.updateObjectDistances(footprint)
	}
}

// UpdateDistances refreshes the object-proximity index with an object that
// another region's manager placed (a boat on water still crowds the shore).
func (om *ObjectManager) UpdateDistances(obj *Object) {
	om.m.updateObjectDistances(obj.Area())
}
