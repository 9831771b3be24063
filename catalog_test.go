package watergen

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticCatalogSubTypes(t *testing.T) {
	c := NewStaticCatalog()

	require.Equal(t, []int{0, 1, 2}, c.SubTypes(KindBoat))
	require.Equal(t, []int{0, 1}, c.SubTypes(KindShipyard))
	require.Nil(t, c.SubTypes(ObjectKind("castle")))
}

func TestStaticCatalogCreate(t *testing.T) {
	c := NewStaticCatalog()

	boat := c.Create(KindBoat, 0)
	require.NotNil(t, boat)
	require.Equal(t, KindBoat, boat.Kind())
	require.Equal(t, LayerSail, boat.Layer())

	require.Nil(t, c.Create(KindBoat, 42))
	require.Nil(t, c.Create(ObjectKind("castle"), 0))

	// Each Create hands out an independent instance.
	other := c.Create(KindBoat, 0)
	other.SetPosition(image.Pt(3, 3))
	require.NotEqual(t, other.VisitablePosition(), boat.VisitablePosition())
}

func TestObjectSupportsTerrain(t *testing.T) {
	c := NewStaticCatalog()

	grassYard := c.Create(KindShipyard, 0)
	require.True(t, grassYard.SupportsTerrain(TerrainGrass))
	require.True(t, grassYard.SupportsTerrain(TerrainDirt))
	require.False(t, grassYard.SupportsTerrain(TerrainSand))

	// Boats carry no terrain list and go anywhere.
	require.True(t, c.Create(KindBoat, 0).SupportsTerrain(TerrainRock))
}

func TestObjectAreas(t *testing.T) {
	c := NewStaticCatalog()

	boat := c.Create(KindBoat, 0)
	boat.SetPosition(image.Pt(5, 5))
	require.Equal(t, 1, boat.BlockedArea().Size())
	require.Equal(t, 1, boat.Area().Size())
	require.True(t, boat.approachTiles().Contains(image.Pt(5, 5)))

	yard := c.Create(KindShipyard, 0)
	yard.SetPosition(image.Pt(5, 5))
	require.Equal(t, 6, yard.BlockedArea().Size())
	require.True(t, yard.BlockedArea().Contains(image.Pt(3, 4)))
	require.Equal(t, 6, yard.Area().Size()) // unguarded

	om := &ObjectManager{}
	require.True(t, om.AddGuard(yard, 500))
	require.Equal(t, 7, yard.Area().Size())
	require.True(t, yard.Area().Contains(image.Pt(5, 6)))
	// The blocked footprint itself never includes the guard.
	require.Equal(t, 6, yard.BlockedArea().Size())

	// Approach tiles sit outside the footprint.
	require.False(t, yard.approachTiles().Overlaps(yard.Area()))
}
