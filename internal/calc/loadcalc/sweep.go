package loadcalc

import (
	"github.com/mohae/deepcopy"

	"Plenum/internal/climate"
)

// OrientationLoad is one row of the multi-orientation sweep.
type OrientationLoad struct {
	Orientation        climate.Orientation `json:"orientation"`
	CoolingSensibleBTU float64             `json:"cooling_sensible_btu"`
	CoolingLatentBTU   float64             `json:"cooling_latent_btu"`
	CoolingTotalBTU    float64             `json:"cooling_total_btu"`
	HeatingCFM         float64             `json:"heating_cfm"`
	CoolingCFM         float64             `json:"cooling_cfm"`
}

// Sweep re-runs the load calculation for each of the eight compass
// directions, overriding the design orientation on a deep-cloned input so the
// caller's input is never touched. Windows with an explicit orientation keep
// it; windows without one follow the design orientation, which is what makes
// the sweep vary. Output order is fixed: N, NE, E, SE, S, SW, W, NW.
func Sweep(in Input) ([]OrientationLoad, error) {
	out := make([]OrientationLoad, 0, 8)
	for _, dir := range climate.CompassDirections() {
		clone := deepcopy.Copy(in).(Input)
		clone.Design.Orientation = dir
		res, err := Calculate(clone)
		if err != nil {
			return nil, err
		}
		out = append(out, OrientationLoad{
			Orientation:        dir,
			CoolingSensibleBTU: res.CoolingSensibleBTU,
			CoolingLatentBTU:   res.CoolingLatentBTU,
			CoolingTotalBTU:    res.CoolingTotalBTU,
			HeatingCFM:         res.HeatingCFM,
			CoolingCFM:         res.CoolingCFM,
		})
	}
	return out, nil
}
