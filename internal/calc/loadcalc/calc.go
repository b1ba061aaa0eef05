// Package loadcalc implements the Manual J residential load calculation:
// envelope transmission, window solar gain, infiltration, internal gains and
// duct loss/gain, aggregated into heating/cooling BTU totals and supply
// airflow requirements.
package loadcalc

import (
	"fmt"
	"math"

	"Plenum/internal/calc/psychro"
	"Plenum/internal/calc/solar"
	"Plenum/internal/climate"
)

type SurfaceKind string

const (
	SurfaceWall   SurfaceKind = "wall"
	SurfaceWindow SurfaceKind = "window"
	SurfaceDoor   SurfaceKind = "door"
	SurfaceRoof   SurfaceKind = "roof"
	SurfaceFloor  SurfaceKind = "floor"
)

// Surface is one exterior building element. The engine never mutates the
// caller's surfaces; defaults are applied to a copy.
type Surface struct {
	Name     string              `json:"name"`
	Kind     SurfaceKind         `json:"kind"`
	AreaSqFt float64             `json:"area_sqft"`
	UValue   float64             `json:"u_value"`
	SHGC     float64             `json:"shgc,omitempty"`
	Orient   climate.Orientation `json:"orientation,omitempty"`
	Shading  float64             `json:"shading,omitempty"` // internal shading multiplier, 1.0 = none
	CLTD     float64             `json:"cltd,omitempty"`    // when > 0, replaces the simple delta-T cooling model
}

type InfiltrationMethod string

const (
	MethodACH InfiltrationMethod = "ACH"
	MethodCFM InfiltrationMethod = "CFM"
)

// Infiltration derives a ventilation airflow either from air changes per hour
// over a conditioned volume, or from a direct CFM rate.
type Infiltration struct {
	Method     InfiltrationMethod `json:"method"`
	Value      float64            `json:"value"`
	VolumeCuFt float64            `json:"volume_cuft,omitempty"`
}

type DuctLocation string

const DuctConditioned DuctLocation = "conditioned"

// Ducts describes the distribution system for the duct loss/gain penalty.
// Any location other than "conditioned" incurs the penalty.
type Ducts struct {
	Location DuctLocation `json:"location"`
	RValue   float64      `json:"r_value,omitempty"`
	AreaSqFt float64      `json:"area_sqft,omitempty"`
}

type Internals struct {
	Occupants            int     `json:"occupants"`
	ApplianceSensibleBTU float64 `json:"appliance_sensible_btu"`
	ApplianceLatentBTU   float64 `json:"appliance_latent_btu"`
}

// Options are the air-handling and model tunables. Zero fields take the ACCA
// residential defaults.
type Options struct {
	HeatingSupplyDeltaT float64 `json:"heating_supply_delta_t,omitempty"` // F, default 50
	CoolingSupplyDeltaT float64 `json:"cooling_supply_delta_t,omitempty"` // F, default 20
	IndoorGrains        float64 `json:"indoor_grains,omitempty"`          // default 65
	HeatingDuctPenalty  float64 `json:"heating_duct_penalty,omitempty"`   // default 0.15
	CoolingDuctPenalty  float64 `json:"cooling_duct_penalty,omitempty"`   // default 0.20
	// CFMMethodScale multiplies a CFM-method infiltration value. Defaults to
	// 1.0: the value is already a rate. Some legacy extractors emitted values
	// expecting a 0.05 scale; set that here only for compatibility with them.
	CFMMethodScale float64 `json:"cfm_method_scale,omitempty"`
	// Solar overrides the built-in PSHGF table, mainly for fixtures.
	Solar solar.Table `json:"-"`
}

func (o Options) withDefaults() Options {
	if o.HeatingSupplyDeltaT <= 0 {
		o.HeatingSupplyDeltaT = 50
	}
	if o.CoolingSupplyDeltaT <= 0 {
		o.CoolingSupplyDeltaT = 20
	}
	if o.IndoorGrains <= 0 {
		o.IndoorGrains = psychro.DefaultIndoorGrains
	}
	if o.HeatingDuctPenalty <= 0 {
		o.HeatingDuctPenalty = 0.15
	}
	if o.CoolingDuctPenalty <= 0 {
		o.CoolingDuctPenalty = 0.20
	}
	if o.CFMMethodScale <= 0 {
		o.CFMMethodScale = 1
	}
	if o.Solar == nil {
		o.Solar = solar.Default()
	}
	return o
}

// Input is the aggregate root consumed by Calculate. Construct one per run
// (whole building or single room); the engine treats it as immutable.
type Input struct {
	Design       climate.DesignConditions `json:"design"`
	Surfaces     []Surface                `json:"surfaces"`
	Infiltration Infiltration             `json:"infiltration"`
	Ducts        Ducts                    `json:"ducts"`
	Internals    Internals                `json:"internals"`
	Options      Options                  `json:"options,omitempty"`
}

type BreakdownLine struct {
	Component  string  `json:"component"`
	HeatingBTU float64 `json:"heating_btu"`
	CoolingBTU float64 `json:"cooling_btu"`
}

// Result carries rounded BTU/hr totals, supply airflows, and the ordered
// per-component breakdown. Each breakdown line is rounded independently, so
// the columns are a rounded decomposition of the unrounded running totals.
type Result struct {
	HeatingBTU         float64         `json:"heating_btu"`
	CoolingSensibleBTU float64         `json:"cooling_sensible_btu"`
	CoolingLatentBTU   float64         `json:"cooling_latent_btu"`
	CoolingTotalBTU    float64         `json:"cooling_total_btu"`
	HeatingCFM         float64         `json:"heating_cfm"`
	CoolingCFM         float64         `json:"cooling_cfm"`
	GrainsDifference   float64         `json:"grains_difference"`
	Breakdown          []BreakdownLine `json:"breakdown"`
}

// Validate rejects input the engine cannot be trusted with. Call it at the
// construction boundary (handlers, importers); Calculate itself only guards
// the unrecoverable case of an empty surface list.
func (in Input) Validate() error {
	if len(in.Surfaces) == 0 {
		return fmt.Errorf("surfaces required")
	}
	if err := in.Design.Validate(); err != nil {
		return err
	}
	for i, s := range in.Surfaces {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if !finite(s.AreaSqFt) || s.AreaSqFt < 0 {
			return fmt.Errorf("surface %s: area must be a non-negative finite number", name)
		}
		if !finite(s.UValue) || s.UValue < 0 {
			return fmt.Errorf("surface %s: u_value must be a non-negative finite number", name)
		}
		if s.SHGC < 0 || s.SHGC > 1 {
			return fmt.Errorf("surface %s: shgc must be within [0, 1]", name)
		}
		if s.Shading < 0 {
			return fmt.Errorf("surface %s: shading must be non-negative", name)
		}
		if s.CLTD < 0 {
			return fmt.Errorf("surface %s: cltd must be non-negative", name)
		}
	}
	if !finite(in.Infiltration.Value) || in.Infiltration.Value < 0 {
		return fmt.Errorf("infiltration: value must be a non-negative finite number")
	}
	if in.Infiltration.Method == MethodACH && in.Infiltration.Value > 0 && in.Infiltration.VolumeCuFt <= 0 {
		return fmt.Errorf("infiltration: ACH method requires a positive volume_cuft")
	}
	if in.Internals.Occupants < 0 {
		return fmt.Errorf("internals: occupants must be non-negative")
	}
	return nil
}

// Normalize fills the gaps a sparse extractor-produced input typically has:
// indoor setpoints, per-kind U-values, SHGC, shading, and a fallback
// ventilation rate when no infiltration is specified at all. Explicit zero
// values with a method tag are respected as zeros.
func (in *Input) Normalize() {
	in.Design.ApplyDefaults()
	for i := range in.Surfaces {
		in.Surfaces[i].applyDefaults()
	}
	if in.Infiltration.Method == "" {
		if in.Infiltration.VolumeCuFt > 0 {
			in.Infiltration.Method = MethodACH
			if in.Infiltration.Value <= 0 {
				in.Infiltration.Value = 0.35
			}
		} else {
			in.Infiltration.Method = MethodCFM
			if in.Infiltration.Value <= 0 {
				in.Infiltration.Value = 15
			}
		}
	}
}

func (s *Surface) applyDefaults() {
	if s.Kind == "" {
		s.Kind = SurfaceWall
	}
	if s.UValue <= 0 {
		if s.Kind == SurfaceWindow {
			s.UValue = 0.55
		} else {
			s.UValue = 0.05
		}
	}
	if s.Kind == SurfaceWindow && s.SHGC <= 0 {
		s.SHGC = 0.4
	}
	if s.Kind == SurfaceRoof && s.Orient == "" {
		s.Orient = climate.Horizontal
	}
	if s.Shading <= 0 {
		s.Shading = 1
	}
}

// Calculate runs the Manual J load calculation. Pure and deterministic: no
// I/O, no shared state, safe to call concurrently.
func Calculate(in Input) (Result, error) {
	if len(in.Surfaces) == 0 {
		return Result{}, fmt.Errorf("surfaces required")
	}
	opt := in.Options.withDefaults()

	design := in.Design
	design.ApplyDefaults()

	dtHeat := math.Max(0, design.IndoorWinterF-design.OutdoorWinterF)
	dtCool := math.Max(0, design.OutdoorSummerF-design.IndoorSummerF)

	var heating, sensible, latent float64
	var breakdown []BreakdownLine

	for _, raw := range in.Surfaces {
		s := raw
		s.applyDefaults()

		h := s.UValue * s.AreaSqFt * dtHeat
		heating += h

		if s.Kind == SurfaceWindow {
			transmission := s.UValue * s.AreaSqFt * dtCool
			orient := s.Orient
			if orient == "" {
				orient = design.Orientation
			}
			gain := s.AreaSqFt * s.SHGC * opt.Solar.Factor(design.Latitude, orient) * s.Shading
			sensible += transmission + gain
			breakdown = append(breakdown,
				BreakdownLine{Component: s.Name, HeatingBTU: round(h), CoolingBTU: round(transmission)},
				BreakdownLine{Component: s.Name + " solar", CoolingBTU: round(gain)},
			)
			continue
		}

		var c float64
		if s.CLTD > 0 {
			c = s.UValue * s.AreaSqFt * s.CLTD
		} else {
			c = s.UValue * s.AreaSqFt * dtCool
		}
		sensible += c
		breakdown = append(breakdown, BreakdownLine{Component: s.Name, HeatingBTU: round(h), CoolingBTU: round(c)})
	}

	cfm := infiltrationCFM(in.Infiltration, opt)
	grains := psychro.GrainsDifference(design.OutdoorSummerF, opt.IndoorGrains)
	if cfm > 0 {
		infHeat := psychro.SensibleBTU(cfm, dtHeat)
		infCool := psychro.SensibleBTU(cfm, dtCool)
		infLatent := psychro.LatentBTU(cfm, grains)
		heating += infHeat
		sensible += infCool
		latent += infLatent
		breakdown = append(breakdown,
			BreakdownLine{Component: "infiltration", HeatingBTU: round(infHeat), CoolingBTU: round(infCool)},
			BreakdownLine{Component: "infiltration latent", CoolingBTU: round(infLatent)},
		)
	}

	intSensible := float64(in.Internals.Occupants)*psychro.OccupantSensibleBTU + in.Internals.ApplianceSensibleBTU
	intLatent := float64(in.Internals.Occupants)*psychro.OccupantLatentBTU + in.Internals.ApplianceLatentBTU
	if intSensible > 0 || intLatent > 0 {
		sensible += intSensible
		latent += intLatent
		breakdown = append(breakdown, BreakdownLine{Component: "internal gains", CoolingBTU: round(intSensible + intLatent)})
	}

	if in.Ducts.Location != DuctConditioned {
		// Flat multiplicative penalty on the running totals, not a physical
		// duct-surface heat-transfer model.
		ductHeat := heating * opt.HeatingDuctPenalty
		ductCool := sensible * opt.CoolingDuctPenalty
		heating += ductHeat
		sensible += ductCool
		breakdown = append(breakdown, BreakdownLine{Component: "duct loss/gain", HeatingBTU: round(ductHeat), CoolingBTU: round(ductCool)})
	}

	res := Result{
		HeatingBTU:         round(heating),
		CoolingSensibleBTU: round(sensible),
		CoolingLatentBTU:   round(latent),
		GrainsDifference:   grains,
		Breakdown:          breakdown,
	}
	res.CoolingTotalBTU = res.CoolingSensibleBTU + res.CoolingLatentBTU
	res.HeatingCFM = round(psychro.AirflowForSensible(res.HeatingBTU, opt.HeatingSupplyDeltaT))
	res.CoolingCFM = round(psychro.AirflowForSensible(res.CoolingSensibleBTU, opt.CoolingSupplyDeltaT))
	return res, nil
}

func infiltrationCFM(inf Infiltration, opt Options) float64 {
	switch inf.Method {
	case MethodACH:
		if inf.VolumeCuFt <= 0 {
			return 0
		}
		return inf.Value * inf.VolumeCuFt / 60
	case MethodCFM:
		return inf.Value * opt.CFMMethodScale
	default:
		return 0
	}
}

func round(v float64) float64 { return math.Round(v) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
