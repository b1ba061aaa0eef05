// Package duct implements the Manual D friction-rate and branch sizing
// calculation: per-room airflows into round-duct diameters and velocities.
package duct

import (
	"fmt"
	"math"
)

type Room struct {
	Name string  `json:"name"`
	CFM  float64 `json:"cfm"`
}

// Input takes per-room airflow requirements plus the system's available
// static pressure (in. w.c.) and total equivalent length (ft). Zero values
// take the usual residential defaults of 0.5 and 250.
type Input struct {
	Rooms                   []Room  `json:"rooms"`
	AvailableStaticPressure float64 `json:"available_static_pressure,omitempty"`
	TotalEquivalentLength   float64 `json:"total_equivalent_length,omitempty"`
}

type Branch struct {
	Name        string  `json:"name"`
	CFM         float64 `json:"cfm"`
	DiameterIn  float64 `json:"round_duct_diameter_in"`
	VelocityFPM float64 `json:"velocity_fpm"`
}

type Result struct {
	FrictionRate float64  `json:"friction_rate"`
	TotalCFM     float64  `json:"total_cfm"`
	Branches     []Branch `json:"branches"`
}

// MinDiameterIn is the smallest branch duct run in residential practice; the
// sizing floor is enforced regardless of airflow.
const MinDiameterIn = 5

// Design produces the friction rate and a per-room round-branch schedule.
// Branch order follows the input room order.
func Design(in Input) (Result, error) {
	if len(in.Rooms) == 0 {
		return Result{}, fmt.Errorf("rooms required")
	}
	asp := in.AvailableStaticPressure
	if asp <= 0 {
		asp = 0.5
	}
	tel := in.TotalEquivalentLength
	if tel <= 0 {
		tel = 250
	}

	res := Result{
		FrictionRate: round3(asp * 100 / tel),
		Branches:     make([]Branch, 0, len(in.Rooms)),
	}
	for i, room := range in.Rooms {
		if math.IsNaN(room.CFM) || math.IsInf(room.CFM, 0) || room.CFM < 0 {
			name := room.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return Result{}, fmt.Errorf("room %s: cfm must be a non-negative finite number", name)
		}
		d := diameterFor(room.CFM)
		res.TotalCFM += room.CFM
		res.Branches = append(res.Branches, Branch{
			Name:        room.Name,
			CFM:         room.CFM,
			DiameterIn:  d,
			VelocityFPM: velocity(room.CFM, d),
		})
	}
	return res, nil
}

// diameterFor is an empirical curve fit standing in for a D-chart lookup.
// It is monotone in CFM: both the power curve and the half-inch ceiling are
// non-decreasing, so a larger airflow never gets a smaller duct.
func diameterFor(cfm float64) float64 {
	d := ceilHalf(math.Pow(cfm/15, 0.45) * 2)
	if d < MinDiameterIn {
		return MinDiameterIn
	}
	return d
}

// velocity is CFM over the duct cross-section in square feet.
func velocity(cfm, diameterIn float64) float64 {
	r := diameterIn / 2 / 12
	return cfm / (math.Pi * r * r)
}

func ceilHalf(v float64) float64 { return math.Ceil(v*2) / 2 }

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
