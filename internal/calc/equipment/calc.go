// Package equipment implements the Manual S equipment-capacity compliance
// check: selected equipment capacity against the computed design loads.
package equipment

import (
	"fmt"
	"math"
)

type Status string

const (
	StatusPass        Status = "Pass"
	StatusUndersized  Status = "Fail: Undersized"
	StatusOversized   Status = "Fail: Oversized"
	StatusSHRMismatch Status = "Warning: SHR Mismatch"
)

// Load is the computed design load the equipment must cover.
type Load struct {
	SensibleBTU float64 `json:"sensible_btu"`
	TotalBTU    float64 `json:"total_btu"`
	HeatingBTU  float64 `json:"heating_btu"`
}

// Capacity is the nominal rating of the candidate equipment.
type Capacity struct {
	SensibleBTU float64 `json:"sensible_btu"`
	TotalBTU    float64 `json:"total_btu"`
	HeatingBTU  float64 `json:"heating_btu"`
}

// Options tune the ACCA sizing window. Zero fields take the Table 1-4
// residential defaults.
type Options struct {
	// UndersizeLimit is the minimum acceptable cooling ratio, default 0.95.
	UndersizeLimit float64 `json:"undersize_limit,omitempty"`
	// OversizeLimit is the maximum acceptable cooling ratio, default 1.15
	// (1.25 is the usual setting for variable-speed equipment).
	OversizeLimit float64 `json:"oversize_limit,omitempty"`
	// HeatingCeiling is a loose sanity bound on the heating ratio, default
	// 1.40. Exceeding it is reported in Notes, not as a failure.
	HeatingCeiling float64 `json:"heating_ceiling,omitempty"`
}

func (o Options) withDefaults() Options {
	if o.UndersizeLimit <= 0 {
		o.UndersizeLimit = 0.95
	}
	if o.OversizeLimit <= 0 {
		o.OversizeLimit = 1.15
	}
	if o.HeatingCeiling <= 0 {
		o.HeatingCeiling = 1.40
	}
	return o
}

// Result is the Manual S verdict: capacity/load ratios and the acceptable
// cooling window derived from the load.
type Result struct {
	Status        Status  `json:"status"`
	CoolingRatio  float64 `json:"cooling_ratio"`
	SensibleRatio float64 `json:"sensible_ratio"`
	HeatingRatio  float64 `json:"heating_ratio"`
	MinCoolingBTU float64 `json:"min_cooling_btu"`
	MaxCoolingBTU float64 `json:"max_cooling_btu"`
	Notes         string  `json:"notes,omitempty"`
}

// Verify compares equipment capacity against the design load. Zero loads are
// clamped to 1 in the denominator so degenerate inputs produce numbers, not
// NaN; a zero-load scenario is unusual but legitimate.
func Verify(load Load, capacity Capacity, opt Options) Result {
	opt = opt.withDefaults()

	res := Result{
		CoolingRatio:  round3(capacity.TotalBTU / nonZero(load.TotalBTU)),
		SensibleRatio: round3(capacity.SensibleBTU / nonZero(load.SensibleBTU)),
		HeatingRatio:  round3(capacity.HeatingBTU / nonZero(load.HeatingBTU)),
		MinCoolingBTU: math.Round(load.TotalBTU * opt.UndersizeLimit),
		MaxCoolingBTU: math.Round(load.TotalBTU * opt.OversizeLimit),
	}

	switch {
	case res.CoolingRatio < opt.UndersizeLimit:
		res.Status = StatusUndersized
	case res.CoolingRatio > opt.OversizeLimit:
		res.Status = StatusOversized
	case res.HeatingRatio < 1.0:
		// Undersized heating is never acceptable, even when cooling passes.
		res.Status = StatusUndersized
	case res.SensibleRatio < 1.0:
		res.Status = StatusSHRMismatch
	default:
		res.Status = StatusPass
	}

	if res.HeatingRatio > opt.HeatingCeiling {
		res.Notes = fmt.Sprintf("heating capacity is %.2fx the design load; consider a smaller unit", res.HeatingRatio)
	}
	return res
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
