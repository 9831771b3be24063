package watergen

// Config holds the tunables of the water zone. DefaultConfig matches the
// values templates have been balanced against; change them and existing
// templates may stop connecting.
type Config struct {
	// WaterTerrain is painted onto every claimed water tile.
	WaterTerrain Terrain

	// ShipyardGuard is the strength handed to a shipyard's monster guard.
	// 0 or less places shipyards unguarded.
	ShipyardGuard int

	// MinLakeSize is the smallest lake (in tiles) that may host a
	// crossing. Smaller lakes are skipped outright - a shipyard's ship
	// needs room to spawn.
	MinLakeSize int

	// BoatProximity rejects boat boarding tiles whose distance to any
	// already placed object is at or below this value, keeping boats away
	// from region guards and other content.
	BoatProximity float64

	// Seed drives every per-region random generator. A fixed seed plus a
	// fixed phase order reproduces the exact same map.
	Seed int64
}

// DefaultConfig returns the standard water-zone settings.
func DefaultConfig() Config {
	return Config{
		WaterTerrain:  TerrainWater,
		ShipyardGuard: 1000,
		MinLakeSize:   25,
		BoatProximity: 3,
	}
}
