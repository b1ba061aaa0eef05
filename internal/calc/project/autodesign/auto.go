// Package autodesign composes the full design pipeline in one call: Manual J
// loads, a recommended equipment pick verified against Manual S, and, when a
// room list is supplied, the Manual D/T distribution schedule.
package autodesign

import (
	"Plenum/internal/calc/equipment"
	"Plenum/internal/calc/loadcalc"
	"Plenum/internal/calc/project/batch"
	"Plenum/internal/calc/project/recommend"
)

type Input struct {
	Building loadcalc.Input    `json:"building"`
	Rooms    []batch.RoomSpec  `json:"rooms,omitempty"`
	Catalog  recommend.Input   `json:"catalog,omitempty"` // load fields are filled from the calculation
	Sizing   equipment.Options `json:"sizing,omitempty"`
}

type Result struct {
	Loads        loadcalc.Result    `json:"loads"`
	Equipment    equipment.Capacity `json:"equipment"`
	Verdict      equipment.Result   `json:"verdict"`
	Distribution *batch.Result      `json:"distribution,omitempty"`
}

func Design(in Input) (Result, error) {
	loads, err := loadcalc.Calculate(in.Building)
	if err != nil {
		return Result{}, err
	}

	pick := in.Catalog
	pick.CoolingTotalBTU = loads.CoolingTotalBTU
	pick.CoolingSensibleBTU = loads.CoolingSensibleBTU
	pick.HeatingBTU = loads.HeatingBTU
	if pick.OversizeLimit <= 0 {
		pick.OversizeLimit = in.Sizing.OversizeLimit
	}
	nominal, err := recommend.Nominal(pick)
	if err != nil {
		return Result{}, err
	}

	capacity := equipment.Capacity{
		SensibleBTU: nominal.SensibleBTU,
		TotalBTU:    nominal.NominalCoolingBTU,
		HeatingBTU:  nominal.NominalHeatingBTU,
	}
	res := Result{
		Loads:     loads,
		Equipment: capacity,
		Verdict: equipment.Verify(equipment.Load{
			SensibleBTU: loads.CoolingSensibleBTU,
			TotalBTU:    loads.CoolingTotalBTU,
			HeatingBTU:  loads.HeatingBTU,
		}, capacity, in.Sizing),
	}

	if len(in.Rooms) > 0 {
		dist, err := batch.Calculate(batch.Input{Building: in.Building, Rooms: in.Rooms})
		if err != nil {
			return Result{}, err
		}
		res.Distribution = &dist
	}
	return res, nil
}
