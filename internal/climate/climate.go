package climate

import (
	"fmt"
	"math"
	"strings"
)

// Orientation is a compass direction tag used for glazing and for the
// building's current solar orientation.
type Orientation string

const (
	North      Orientation = "N"
	Northeast  Orientation = "NE"
	East       Orientation = "E"
	Southeast  Orientation = "SE"
	South      Orientation = "S"
	Southwest  Orientation = "SW"
	West       Orientation = "W"
	Northwest  Orientation = "NW"
	Horizontal Orientation = "horizontal"
	Mixed      Orientation = "mixed"
)

// CompassDirections returns the eight compass points in the fixed order used
// by the orientation sweep.
func CompassDirections() []Orientation {
	return []Orientation{North, Northeast, East, Southeast, South, Southwest, West, Northwest}
}

// ParseOrientation accepts both short tags ("NE") and full names
// ("northeast") as produced by upstream extractors.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "ne", "northeast":
		return Northeast, nil
	case "e", "east":
		return East, nil
	case "se", "southeast":
		return Southeast, nil
	case "s", "south":
		return South, nil
	case "sw", "southwest":
		return Southwest, nil
	case "w", "west":
		return West, nil
	case "nw", "northwest":
		return Northwest, nil
	case "horizontal", "roof", "flat":
		return Horizontal, nil
	case "mixed", "":
		return Mixed, nil
	}
	return Mixed, fmt.Errorf("unknown orientation %q", s)
}

type DailyRange string

const (
	DailyRangeLow    DailyRange = "low"
	DailyRangeMedium DailyRange = "medium"
	DailyRangeHigh   DailyRange = "high"
)

// DesignConditions are the outdoor/indoor design temperatures for one
// calculation run. Immutable once handed to an engine.
type DesignConditions struct {
	IndoorWinterF  float64     `json:"indoor_winter_f"`
	OutdoorWinterF float64     `json:"outdoor_winter_f"`
	IndoorSummerF  float64     `json:"indoor_summer_f"`
	OutdoorSummerF float64     `json:"outdoor_summer_f"`
	DailyRange     DailyRange  `json:"daily_range,omitempty"`
	Latitude       float64     `json:"latitude"`
	Orientation    Orientation `json:"orientation,omitempty"`
}

// ApplyDefaults fills indoor setpoints and bookkeeping tags that upstream
// extractors routinely omit. Outdoor temperatures are left alone: zero is a
// legitimate design temperature.
func (d *DesignConditions) ApplyDefaults() {
	if d.IndoorWinterF == 0 {
		d.IndoorWinterF = 70
	}
	if d.IndoorSummerF == 0 {
		d.IndoorSummerF = 75
	}
	if d.DailyRange == "" {
		d.DailyRange = DailyRangeMedium
	}
	if d.Latitude == 0 {
		d.Latitude = 40
	}
	if d.Orientation == "" {
		d.Orientation = Mixed
	}
}

func (d DesignConditions) Validate() error {
	for name, v := range map[string]float64{
		"indoor_winter_f":  d.IndoorWinterF,
		"outdoor_winter_f": d.OutdoorWinterF,
		"indoor_summer_f":  d.IndoorSummerF,
		"outdoor_summer_f": d.OutdoorSummerF,
		"latitude":         d.Latitude,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("design condition %s is not finite", name)
		}
	}
	if d.Latitude < -90 || d.Latitude > 90 {
		return fmt.Errorf("latitude %.1f out of range", d.Latitude)
	}
	return nil
}

// ZoneDesign holds the 99%/1% design temperatures for a climate zone.
type ZoneDesign struct {
	OutdoorWinterF float64    `json:"outdoor_winter_f"`
	OutdoorSummerF float64    `json:"outdoor_summer_f"`
	Latitude       float64    `json:"latitude"`
	DailyRange     DailyRange `json:"daily_range"`
}

// zoneTable is a coarse residential design-temperature table. It is read-only;
// LookupZone hands out copies.
var zoneTable = map[string]ZoneDesign{
	"atlanta":     {OutdoorWinterF: 22, OutdoorSummerF: 92, Latitude: 33.7, DailyRange: DailyRangeMedium},
	"chicago":     {OutdoorWinterF: -2, OutdoorSummerF: 91, Latitude: 41.9, DailyRange: DailyRangeMedium},
	"dallas":      {OutdoorWinterF: 22, OutdoorSummerF: 99, Latitude: 32.8, DailyRange: DailyRangeMedium},
	"denver":      {OutdoorWinterF: 1, OutdoorSummerF: 90, Latitude: 39.7, DailyRange: DailyRangeHigh},
	"miami":       {OutdoorWinterF: 47, OutdoorSummerF: 90, Latitude: 25.8, DailyRange: DailyRangeLow},
	"minneapolis": {OutdoorWinterF: -11, OutdoorSummerF: 88, Latitude: 44.9, DailyRange: DailyRangeMedium},
	"phoenix":     {OutdoorWinterF: 34, OutdoorSummerF: 108, Latitude: 33.4, DailyRange: DailyRangeHigh},
	"seattle":     {OutdoorWinterF: 26, OutdoorSummerF: 84, Latitude: 47.6, DailyRange: DailyRangeLow},
}

// LookupZone resolves a climate-zone name to its design temperatures.
func LookupZone(name string) (ZoneDesign, bool) {
	z, ok := zoneTable[strings.ToLower(strings.TrimSpace(name))]
	return z, ok
}

// Zones lists the known climate-zone names.
func Zones() []string {
	out := make([]string, 0, len(zoneTable))
	for k := range zoneTable {
		out = append(out, k)
	}
	return out
}
