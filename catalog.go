package watergen

import (
	"image"

	"github.com/dlshcbmuipmam/watergen/internal/area"
)

// ObjectKind names a class of placeable object.
type ObjectKind string

const (
	KindBoat     ObjectKind = "boat"
	KindShipyard ObjectKind = "shipyard"
)

// NavigationLayer is the movement layer an object travels on. Water routing
// only ever places boats whose layer is LayerSail.
type NavigationLayer string

const (
	LayerLand NavigationLayer = "land"
	LayerSail NavigationLayer = "sail"
	LayerAir  NavigationLayer = "air"
)

// Catalog enumerates and instantiates object sub-types. It is an injected,
// read-only capability of the host generator: the water core never reaches
// for a global registry.
type Catalog interface {
	// SubTypes lists the known sub-types of a kind in ascending order.
	SubTypes(kind ObjectKind) []int

	// Create instantiates a sub-type, or returns nil if unknown.
	Create(kind ObjectKind, subType int) *Object
}

// Object is a placeable instance: a blocked footprint anchored on a single
// visitable tile, optionally accompanied by a guard.
type Object struct {
	kind    ObjectKind
	subType int
	layer   NavigationLayer

	// terrains the sub-type may appear on; empty means any.
	terrains []Terrain

	// footprint holds blocked offsets relative to the visitable tile at
	// (0,0). An empty footprint means the object only occupies its
	// visitable tile (boats).
	footprint []image.Point

	pos image.Point

	guarded       bool
	guardStrength int
}

// guardOffset is where a guard stands relative to the visitable tile.
var guardOffset = image.Pt(0, 1)

// Kind returns the object kind.
func (o *Object) Kind() ObjectKind { return o.kind }

// SubType returns the catalog sub-type.
func (o *Object) SubType() int { return o.subType }

// Layer returns the object's navigation layer.
func (o *Object) Layer() NavigationLayer { return o.layer }

// Guarded reports whether a guard accompanies the object.
func (o *Object) Guarded() bool { return o.guarded }

// SupportsTerrain reports whether the sub-type may appear on ter.
func (o *Object) SupportsTerrain(ter Terrain) bool {
	if len(o.terrains) == 0 {
		return true
	}
	for _, t := range o.terrains {
		if t == ter {
			return true
		}
	}
	return false
}

// SetPosition anchors the visitable tile at t.
func (o *Object) SetPosition(t image.Point) { o.pos = t }

// VisitablePosition returns the object's single visitable tile.
func (o *Object) VisitablePosition() image.Point { return o.pos }

// BlockedArea returns the object's own footprint (visitable included,
// guard excluded) at its current position.
func (o *Object) BlockedArea() *area.Area {
	a := area.New(o.pos)
	for _, off := range o.footprint {
		a.Add(o.pos.Add(off))
	}
	return a
}

// Area returns the full committed footprint: the blocked area plus the
// guard tile when guarded.
func (o *Object) Area() *area.Area {
	a := o.BlockedArea()
	if o.guarded {
		a.Add(o.pos.Add(guardOffset))
	}
	return a
}

// approachTiles returns where a path must arrive to make the object
// usable: the visitable tile itself for tile-sized objects, the outward
// border of the footprint otherwise.
func (o *Object) approachTiles() *area.Area {
	if len(o.footprint) == 0 {
		return area.New(o.pos)
	}
	return o.Area().BorderOutside()
}

// StaticCatalog is a Catalog backed by fixed sub-type tables. Hosts with a
// data-driven object registry implement Catalog themselves; tests and the
// example driver use this one.
type StaticCatalog struct {
	objects map[ObjectKind]map[int]Object
}

// NewStaticCatalog returns a catalog with the default boat and shipyard
// sub-types: two sailing boats, one air boat, and shipyards for grass/dirt
// and sand coasts.
func NewStaticCatalog() *StaticCatalog {
	shipyardFootprint := []image.Point{{-1, 0}, {-2, 0}, {0, -1}, {-1, -1}, {-2, -1}}
	return &StaticCatalog{objects: map[ObjectKind]map[int]Object{
		KindBoat: {
			0: {kind: KindBoat, subType: 0, layer: LayerSail},
			1: {kind: KindBoat, subType: 1, layer: LayerSail},
			2: {kind: KindBoat, subType: 2, layer: LayerAir},
		},
		KindShipyard: {
			0: {kind: KindShipyard, subType: 0, layer: LayerLand,
				terrains:  []Terrain{TerrainGrass, TerrainDirt},
				footprint: shipyardFootprint},
			1: {kind: KindShipyard, subType: 1, layer: LayerLand,
				terrains:  []Terrain{TerrainSand, TerrainRock},
				footprint: shipyardFootprint},
		},
	}}
}

// SubTypes lists sub-types of a kind in ascending order.
func (c *StaticCatalog) SubTypes(kind ObjectKind) []int {
	subs, ok := c.objects[kind]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(subs))
	for s := range subs {
		out = append(out, s)
	}
	for i := 1; i < len(out); i++ { // insertion sort, tiny input
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Create instantiates a sub-type.
func (c *StaticCatalog) Create(kind ObjectKind, subType int) *Object {
	subs, ok := c.objects[kind]
	if !ok {
		return nil
	}
	tmpl, ok := subs[subType]
	if !ok {
		return nil
	}
	obj := tmpl // copy
	return &obj
}
