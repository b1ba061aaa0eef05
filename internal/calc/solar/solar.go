// Package solar provides peak solar heat gain factors (PSHGF) for glazing,
// keyed by latitude bucket and orientation. The table is a coarse
// simplification of the ASHRAE solar-position tables: acceptable for
// residential estimation, not authoritative.
package solar

import (
	"math"

	"Plenum/internal/climate"
)

// DefaultFactor is the conservative fallback for unrecognized orientations.
const DefaultFactor = 50

// Table maps latitude bucket (30/40/50) and orientation to a peak solar heat
// gain factor in BTU/hr*ft2.
type Table map[int]map[climate.Orientation]float64

// Default returns a fresh copy of the built-in PSHGF table, so callers and
// tests can substitute or tweak entries without touching shared state.
func Default() Table {
	return Table{
		30: {
			climate.North: 34, climate.Northeast: 103, climate.East: 214,
			climate.Southeast: 170, climate.South: 120, climate.Southwest: 170,
			climate.West: 214, climate.Northwest: 103, climate.Horizontal: 260,
		},
		40: {
			climate.North: 38, climate.Northeast: 110, climate.East: 216,
			climate.Southeast: 190, climate.South: 160, climate.Southwest: 190,
			climate.West: 216, climate.Northwest: 110, climate.Horizontal: 240,
		},
		50: {
			climate.North: 42, climate.Northeast: 117, climate.East: 216,
			climate.Southeast: 205, climate.South: 200, climate.Southwest: 205,
			climate.West: 216, climate.Northwest: 117, climate.Horizontal: 215,
		},
	}
}

// Factor looks up the PSHGF for a latitude and orientation. Latitude snaps to
// the nearest 10-degree bucket, clamped to [30, 50]; unknown orientations get
// DefaultFactor.
func (t Table) Factor(latitude float64, o climate.Orientation) float64 {
	row, ok := t[bucket(latitude)]
	if !ok {
		return DefaultFactor
	}
	v, ok := row[o]
	if !ok {
		return DefaultFactor
	}
	return v
}

func bucket(latitude float64) int {
	b := int(math.Round(latitude/10)) * 10
	if b < 30 {
		return 30
	}
	if b > 50 {
		return 50
	}
	return b
}
