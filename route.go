package watergen

import (
	"image"
	"log/slog"

	"github.com/dlshcbmuipmam/watergen/internal/area"
)

// WaterRoute tries to connect a land region to the water zone.
//
// Lakes the region borders without a KeepConnections entry are treated as
// incidental terrain spillover: their shared border is blocked and removed
// from the region's placeable set. Marked lakes get a crossing - a guarded
// shipyard for starting or towned regions (boat fallback), a plain boat
// otherwise. Failure to place anything is an expected outcome reported by
// a zero RouteInfo, never an error; a region with no coast at all returns
// immediately (template authors may leave regions landlocked on purpose).
func (w *WaterZone) WaterRoute(dst *Region) RouteInfo {
	var info RouteInfo

	if dst.Coast().Empty() {
		return info
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	for i := range w.lakes {
		lake := &w.lakes[i]
		nz, ok := lake.NeighbourZones[dst.ID()]
		if !ok {
			continue
		}

		if !lake.KeepConnections.Has(dst.ID()) {
			for _, ct := range nz.Tiles() {
				if w.m.IsPossible(ct) {
					w.m.SetOccupied(ct, TileBlocked)
				}
			}
			dst.mu.Lock()
			dst.areaPossible.RemoveAll(nz)
			dst.mu.Unlock()
			slog.Info("blocked incidental water adjacency", "region", dst.ID(), "tiles", nz.Size())
			continue
		}

		// Too small to host a shipyard safely.
		if lake.Area.Size() < w.cfg.MinLakeSize {
			slog.Info("skipping very small lake", "region", dst.ID(), "size", lake.Area.Size())
			continue
		}

		wantsShipyard := dst.Type() == RegionPlayerStart || dst.Type() == RegionCPUStart || dst.TownCount() > 0
		if wantsShipyard {
			if w.placeShipyard(dst, lake, w.cfg.ShipyardGuard, &info) {
				slog.Info("shipyard placed", "region", dst.ID())
			} else {
				slog.Warn("shipyard placement failed, trying boat", "region", dst.ID())
				if w.placeBoat(dst, lake, &info) {
					slog.Warn("boat placed after shipyard failure", "region", dst.ID())
				} else {
					slog.Error("boat placement failed", "region", dst.ID())
				}
			}
			continue
		}

		if w.placeBoat(dst, lake, &info) {
			slog.Info("boat placed", "region", dst.ID())
		} else {
			slog.Error("boat placement failed", "region", dst.ID())
		}
	}

	return info
}

// placeBoat puts an unguarded sailing boat on navigable water next to a
// boarding tile of the land region. Boats are not scoped to the lake's
// water: any navigable water tile will do. Boarding tiles crowding an
// existing placed object are rejected so boats keep clear of region guards
// and other content. First boarding candidate satisfying every constraint
// wins. Caller holds w.mu.
func (w *WaterZone) placeBoat(land *Region, lake *Lake, info *RouteInfo) bool {
	manager := w.region.Manager()

	// Only sailing boats belong on open water.
	var sailing []int
	for _, sub := range w.catalog.SubTypes(KindBoat) {
		if obj := w.catalog.Create(KindBoat, sub); obj != nil && obj.Layer() == LayerSail {
			sailing = append(sailing, sub)
		}
	}
	if len(sailing) == 0 {
		return false
	}
	boat := w.catalog.Create(KindBoat, sailing[w.region.Rand().Intn(len(sailing))])

	waterAvailable := w.region.AreaPossible().Union(w.region.FreePaths())
	coast := lake.NeighbourZones[land.ID()].Intersect(land.AreaPossible().Union(land.FreePaths()))
	boardingPositions := coast.GetSubarea(func(t image.Point) bool {
		if w.m.NearestObjectDistance(t) <= w.cfg.BoatProximity {
			return false
		}
		return area.New(t).BorderOutside().Overlaps(waterAvailable)
	})

	for !boardingPositions.Empty() {
		boarding := boardingPositions.First()
		shipPositions := area.New(boarding).BorderOutside().Intersect(waterAvailable)
		if shipPositions.Empty() {
			boardingPositions.Erase(boarding)
			continue
		}

		path, ok := manager.PlaceAndConnectObject(shipPositions, boat, nil)
		landPath := land.SearchPathTo(boarding)
		if !ok || !landPath.Valid() {
			boardingPositions.Erase(boarding)
			continue
		}

		info.Blocked = boat.Area()
		info.Visitable = boat.VisitablePosition()
		info.Boarding = boarding
		info.Water = shipPositions

		w.region.ConnectPath(path)
		land.ConnectPath(landPath)
		manager.PlaceObject(boat, false)
		// Keep later land placements away from the boat.
		land.Manager().UpdateDistances(boat)
		break
	}

	return !boardingPositions.Empty()
}

// placeShipyard puts a guarded shipyard on the land region's coast so that
// its ship spawns in the lake. Three paths must hold before committing: a
// land path to the shipyard, a land path to the boarding tile avoiding the
// shipyard's own footprint, and a water path into the spawn tiles. First
// boarding candidate satisfying all of them wins. Caller holds w.mu.
func (w *WaterZone) placeShipyard(land *Region, lake *Lake, guard int, info *RouteInfo) bool {
	manager := land.Manager()

	var subs []int
	for _, sub := range w.catalog.SubTypes(KindShipyard) {
		if obj := w.catalog.Create(KindShipyard, sub); obj != nil && obj.SupportsTerrain(land.TerrainType()) {
			subs = append(subs, sub)
		}
	}
	if len(subs) == 0 {
		return false
	}
	shipyard := w.catalog.Create(KindShipyard, subs[w.region.Rand().Intn(len(subs))])
	manager.AddGuard(shipyard, guard)

	// Unlike boats, shipyards are lake-scoped: the spawned ship must sit in
	// this lake's water.
	waterAvailable := w.region.AreaPossible().Union(w.region.FreePaths()).Intersect(lake.Area)
	coast := lake.NeighbourZones[land.ID()].Intersect(land.AreaPossible().Union(land.FreePaths()))
	boardingPositions := coast.GetSubarea(func(t image.Point) bool {
		return area.New(t).BorderOutside().Overlaps(waterAvailable)
	})

	for !boardingPositions.Empty() {
		boarding := boardingPositions.First()
		shipPositions := area.New(boarding).BorderOutside().Intersect(waterAvailable)
		if shipPositions.Empty() {
			boardingPositions.Erase(boarding)
			continue
		}

		// Any placement whose own border reaches both the boarding tile
		// and the ship water counts; anything else is invalid. Only the
		// shipyard footprint matters here, not the guard.
		path, ok := manager.PlaceAndConnectObject(land.AreaPossible(), shipyard, func(image.Point) float64 {
			shipyardOut := shipyard.BlockedArea().BorderOutside()
			if !shipyardOut.Contains(boarding) || !shipyardOut.Overlaps(shipPositions) {
				return -1
			}
			return 1
		})
		if !ok {
			boardingPositions.Erase(boarding)
			continue
		}

		// Land path to the boarding tile, avoiding the shipyard itself.
		searchArea := land.AreaPossible().Subtract(shipyard.Area())
		pathToBoarding := searchPath(searchArea, land.FreePaths().Union(path.Tiles()), area.New(boarding))

		// Block the rest of the shipyard's water border so its ship can
		// only ever spawn in the tiles we verified.
		shipyardOutToBlock := shipyard.Area().BorderOutside().Intersect(waterAvailable).Subtract(shipPositions)
		shipPositions = shipPositions.Subtract(shipyardOutToBlock)
		pathToBoat := w.region.SearchPath(shipPositions)

		if !pathToBoarding.Valid() || !pathToBoat.Valid() {
			boardingPositions.Erase(boarding)
			continue
		}

		land.ConnectPath(path)
		land.ConnectPath(pathToBoarding)
		w.region.ConnectPath(pathToBoat)

		info.Blocked = shipyard.Area()
		info.Visitable = shipyard.VisitablePosition()
		info.Boarding = boarding
		info.Water = shipPositions

		manager.PlaceObject(shipyard, true)

		w.region.mu.Lock()
		w.region.areaPossible.RemoveAll(shipyardOutToBlock)
		w.region.mu.Unlock()
		for _, t := range shipyardOutToBlock.Tiles() {
			if w.m.IsPossible(t) {
				w.m.SetOccupied(t, TileBlocked)
			}
		}
		break
	}

	return !boardingPositions.Empty()
}
