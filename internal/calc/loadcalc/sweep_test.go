package loadcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Plenum/internal/climate"
)

func sweepInput() Input {
	in := singleWallInput()
	// No explicit orientation: the window follows the design orientation, so
	// the sweep actually varies.
	in.Surfaces = append(in.Surfaces, Surface{
		Name: "glass", Kind: SurfaceWindow, AreaSqFt: 60, UValue: 0.55, SHGC: 0.4,
	})
	return in
}

func TestSweepCoversAllDirections(t *testing.T) {
	in := sweepInput()
	rows, err := Sweep(in)
	require.NoError(t, err)
	require.Len(t, rows, 8)

	want := climate.CompassDirections()
	for i, row := range rows {
		assert.Equal(t, want[i], row.Orientation)
		assert.Equal(t, row.CoolingTotalBTU, row.CoolingSensibleBTU+row.CoolingLatentBTU)
	}

	// East and north glazing must not load the same.
	assert.NotEqual(t, rows[0].CoolingSensibleBTU, rows[2].CoolingSensibleBTU)
}

func TestSweepMatchesDirectCalculation(t *testing.T) {
	in := sweepInput()
	rows, err := Sweep(in)
	require.NoError(t, err)

	for i, dir := range climate.CompassDirections() {
		direct := sweepInput()
		direct.Design.Orientation = dir
		res, err := Calculate(direct)
		require.NoError(t, err)
		assert.Equal(t, res.CoolingSensibleBTU, rows[i].CoolingSensibleBTU)
		assert.Equal(t, res.CoolingLatentBTU, rows[i].CoolingLatentBTU)
		assert.Equal(t, res.HeatingCFM, rows[i].HeatingCFM)
		assert.Equal(t, res.CoolingCFM, rows[i].CoolingCFM)
	}
}

func TestSweepDoesNotMutateInput(t *testing.T) {
	in := sweepInput()
	in.Design.Orientation = climate.Mixed
	_, err := Sweep(in)
	require.NoError(t, err)
	assert.Equal(t, climate.Mixed, in.Design.Orientation)
	assert.Equal(t, climate.Orientation(""), in.Surfaces[1].Orient)
}
