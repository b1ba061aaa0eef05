// Package batch runs the whole-building pipeline: one Manual J pass for the
// envelope, an area-fraction apportionment of the system loads to rooms, and
// a duct/terminal schedule for the resulting per-room airflows.
package batch

import (
	"fmt"
	"math"

	"Plenum/internal/calc/duct"
	"Plenum/internal/calc/loadcalc"
	"Plenum/internal/calc/terminal"
)

// RoomSpec is one room of the project. CFM, when set, overrides the
// apportioned airflow (used when a room-level calculation already ran).
type RoomSpec struct {
	Name     string  `json:"name"`
	AreaSqFt float64 `json:"area_sqft"`
	CFM      float64 `json:"cfm,omitempty"`
}

type Input struct {
	Building loadcalc.Input   `json:"building"`
	Rooms    []RoomSpec       `json:"rooms"`
	Duct     duct.Input       `json:"duct,omitempty"`     // Rooms field is ignored; filled from the apportionment
	Terminal terminal.Options `json:"terminal,omitempty"`
}

// RoomLoad is a room's share of the system loads. Room-level physics detail
// is unavailable at this stage, so the split is the orchestrator's
// area-fraction heuristic, not a per-room Manual J.
type RoomLoad struct {
	Name               string  `json:"name"`
	AreaSqFt           float64 `json:"area_sqft"`
	AreaFraction       float64 `json:"area_fraction"`
	HeatingBTU         float64 `json:"heating_btu"`
	CoolingSensibleBTU float64 `json:"cooling_sensible_btu"`
	CoolingLatentBTU   float64 `json:"cooling_latent_btu"`
	CoolingTotalBTU    float64 `json:"cooling_total_btu"`
	HeatingCFM         float64 `json:"heating_cfm"`
	CoolingCFM         float64 `json:"cooling_cfm"`
}

type Result struct {
	System    loadcalc.Result      `json:"system"`
	Rooms     []RoomLoad           `json:"rooms"`
	Ducts     duct.Result          `json:"ducts"`
	Terminals []terminal.Selection `json:"terminals"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Rooms) == 0 {
		return Result{}, fmt.Errorf("rooms required")
	}
	var totalArea float64
	for i, r := range in.Rooms {
		if r.AreaSqFt < 0 || math.IsNaN(r.AreaSqFt) || math.IsInf(r.AreaSqFt, 0) {
			name := r.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i)
			}
			return Result{}, fmt.Errorf("room %s: area must be a non-negative finite number", name)
		}
		totalArea += r.AreaSqFt
	}
	if totalArea <= 0 {
		return Result{}, fmt.Errorf("rooms must have a positive total area")
	}

	system, err := loadcalc.Calculate(in.Building)
	if err != nil {
		return Result{}, err
	}

	res := Result{System: system, Rooms: make([]RoomLoad, 0, len(in.Rooms))}
	ductRooms := make([]duct.Room, 0, len(in.Rooms))
	termRooms := make([]terminal.Room, 0, len(in.Rooms))
	for _, r := range in.Rooms {
		frac := r.AreaSqFt / totalArea
		cfm := r.CFM
		if cfm <= 0 {
			cfm = math.Round(system.CoolingCFM * frac)
		}
		res.Rooms = append(res.Rooms, RoomLoad{
			Name:               r.Name,
			AreaSqFt:           r.AreaSqFt,
			AreaFraction:       frac,
			HeatingBTU:         math.Round(system.HeatingBTU * frac),
			CoolingSensibleBTU: math.Round(system.CoolingSensibleBTU * frac),
			CoolingLatentBTU:   math.Round(system.CoolingLatentBTU * frac),
			CoolingTotalBTU:    math.Round(system.CoolingTotalBTU * frac),
			HeatingCFM:         math.Round(system.HeatingCFM * frac),
			CoolingCFM:         cfm,
		})
		ductRooms = append(ductRooms, duct.Room{Name: r.Name, CFM: cfm})
		termRooms = append(termRooms, terminal.Room{Name: r.Name, CFM: cfm, AreaSqFt: r.AreaSqFt})
	}

	ductIn := in.Duct
	ductIn.Rooms = ductRooms
	if res.Ducts, err = duct.Design(ductIn); err != nil {
		return Result{}, err
	}
	if res.Terminals, err = terminal.SelectRooms(termRooms, in.Terminal); err != nil {
		return Result{}, err
	}
	return res, nil
}
