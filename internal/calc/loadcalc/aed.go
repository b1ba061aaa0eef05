package loadcalc

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// AEDLimitPct is the default allowed peak excursion over the daily average
// glazing load.
const AEDLimitPct = 30

type AEDStatus string

const (
	AEDPass AEDStatus = "Pass"
	AEDFail AEDStatus = "Fail"
)

// AEDResult is the adequate-exposure-diversity excursion check: 24 synthetic
// hourly cooling loads and the peak excursion over the average glazing load.
type AEDResult struct {
	HourlyCoolingBTU []float64 `json:"hourly_cooling_btu"`
	PeakExcursionPct float64   `json:"peak_excursion_pct"`
	LimitPct         float64   `json:"limit_pct"`
	Status           AEDStatus `json:"status"`
}

// CalculateAED runs the base load calculation, isolates the peak glazing
// solar contribution at the design orientation, and spreads it over the day
// with a half-sine sun-intensity curve peaking at 13:00. Fails when the peak
// hourly load exceeds the average glazing load by 30% or more.
func CalculateAED(in Input) (AEDResult, error) {
	base, err := Calculate(in)
	if err != nil {
		return AEDResult{}, err
	}
	opt := in.Options.withDefaults()
	design := in.Design
	design.ApplyDefaults()

	var windowArea, shgcSum float64
	windows := 0
	for _, raw := range in.Surfaces {
		s := raw
		s.applyDefaults()
		if s.Kind != SurfaceWindow {
			continue
		}
		windowArea += s.AreaSqFt
		shgcSum += s.SHGC
		windows++
	}

	var peakSolar float64
	if windows > 0 {
		avgSHGC := shgcSum / float64(windows)
		peakSolar = windowArea * avgSHGC * opt.Solar.Factor(design.Latitude, design.Orientation)
	}
	baseLoad := base.CoolingTotalBTU - peakSolar

	hourly := make([]float64, 24)
	glazing := make([]float64, 24)
	for h := 0; h < 24; h++ {
		glazing[h] = peakSolar * sunIntensity(h)
		hourly[h] = baseLoad + glazing[h]
	}

	res := AEDResult{HourlyCoolingBTU: hourly, LimitPct: AEDLimitPct, Status: AEDPass}
	avgGlazing := stat.Mean(glazing, nil)
	if avgGlazing > 0 {
		res.PeakExcursionPct = (floats.Max(hourly) - baseLoad - avgGlazing) / avgGlazing * 100
	}
	if res.PeakExcursionPct < 0 {
		res.PeakExcursionPct = 0
	}
	if res.PeakExcursionPct >= AEDLimitPct {
		res.Status = AEDFail
	}
	return res, nil
}

// sunIntensity is a half-sine daylight curve: zero before 07:00 and after
// 20:00, peaking near 13:00.
func sunIntensity(hour int) float64 {
	return math.Max(0, math.Sin((float64(hour)-7)/13*math.Pi))
}
