// Package psychro holds the air-side constants and small psychrometric
// derivations shared by the load and airflow engines.
package psychro

import "math"

const (
	// SensibleAirFactor converts CFM x deltaT(F) to BTU/hr.
	SensibleAirFactor = 1.08
	// LatentAirFactor converts CFM x grains difference to BTU/hr.
	LatentAirFactor = 0.68

	// ACCA per-occupant gains, BTU/hr.
	OccupantSensibleBTU = 230
	OccupantLatentBTU   = 200

	// DefaultIndoorGrains is the assumed indoor moisture level at 75F/50%RH.
	DefaultIndoorGrains = 65
)

// EstimatedOutdoorGrains approximates outdoor moisture (grains/lb) from the
// summer design dry-bulb. A linear stand-in for a real psychrometric chart
// lookup; adequate for residential estimation, not meteorologically exact.
func EstimatedOutdoorGrains(outdoorSummerF float64) float64 {
	return outdoorSummerF*1.4 - 10
}

// GrainsDifference is the outdoor-indoor moisture difference used for latent
// infiltration loads, clamped at zero for dry climates.
func GrainsDifference(outdoorSummerF, indoorGrains float64) float64 {
	return math.Max(0, EstimatedOutdoorGrains(outdoorSummerF)-indoorGrains)
}

// SensibleBTU is the sensible load carried by an airflow across a
// temperature difference.
func SensibleBTU(cfm, deltaTF float64) float64 {
	return cfm * SensibleAirFactor * deltaTF
}

// LatentBTU is the latent load carried by an airflow across a grains
// difference.
func LatentBTU(cfm, grains float64) float64 {
	return cfm * LatentAirFactor * grains
}

// AirflowForSensible inverts SensibleBTU: the CFM needed to move a sensible
// load at a given supply-air delta-T.
func AirflowForSensible(btu, deltaTF float64) float64 {
	if deltaTF == 0 {
		return 0
	}
	return btu / (SensibleAirFactor * deltaTF)
}
