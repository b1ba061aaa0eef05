// Package recommend picks a nominal equipment capacity for a computed load:
// the catalog step closest to the Manual S sizing window.
package recommend

import (
	"fmt"
	"math"
)

type Input struct {
	CoolingTotalBTU    float64 `json:"cooling_total_btu"`
	CoolingSensibleBTU float64 `json:"cooling_sensible_btu,omitempty"`
	HeatingBTU         float64 `json:"heating_btu,omitempty"`
	// StepBTU is the catalog granularity, default 6000 (half a ton).
	StepBTU float64 `json:"step_btu,omitempty"`
	// OversizeLimit matches the Manual S ceiling, default 1.15.
	OversizeLimit float64 `json:"oversize_limit,omitempty"`
	// SHR is the assumed sensible heat ratio of the unit, default 0.75.
	SHR float64 `json:"shr,omitempty"`
}

type Result struct {
	NominalCoolingBTU  float64 `json:"nominal_cooling_btu"`
	Tons               float64 `json:"tons"`
	SensibleBTU        float64 `json:"sensible_btu"`
	NominalHeatingBTU  float64 `json:"nominal_heating_btu"`
	MinCoolingBTU      float64 `json:"min_cooling_btu"`
	MaxCoolingBTU      float64 `json:"max_cooling_btu"`
	InsideSizingWindow bool    `json:"inside_sizing_window"`
	Notes              string  `json:"notes,omitempty"`
}

func Nominal(in Input) (Result, error) {
	if in.CoolingTotalBTU <= 0 {
		return Result{}, fmt.Errorf("cooling_total_btu must be positive")
	}
	if in.StepBTU <= 0 {
		in.StepBTU = 6000
	}
	if in.OversizeLimit <= 0 {
		in.OversizeLimit = 1.15
	}
	if in.SHR <= 0 {
		in.SHR = 0.75
	}

	min := in.CoolingTotalBTU * 0.95
	max := in.CoolingTotalBTU * in.OversizeLimit

	// Smallest catalog step that covers the window floor; when the window is
	// narrower than one step, fall back to the step nearest the load.
	nominal := math.Ceil(min/in.StepBTU) * in.StepBTU
	if nominal > max {
		nominal = math.Round(in.CoolingTotalBTU/in.StepBTU) * in.StepBTU
	}
	if nominal < in.StepBTU {
		nominal = in.StepBTU
	}

	res := Result{
		NominalCoolingBTU:  nominal,
		Tons:               nominal / 12000,
		SensibleBTU:        math.Round(nominal * in.SHR),
		MinCoolingBTU:      math.Round(min),
		MaxCoolingBTU:      math.Round(max),
		InsideSizingWindow: nominal >= min && nominal <= max,
	}
	if in.HeatingBTU > 0 {
		res.NominalHeatingBTU = math.Ceil(in.HeatingBTU/5000) * 5000
	}
	if !res.InsideSizingWindow {
		res.Notes = "no catalog step falls inside the 95-115% window; nearest step selected"
	}
	return res, nil
}
