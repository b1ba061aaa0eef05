package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Plenum/internal/calc/loadcalc"
	"Plenum/internal/climate"
)

func buildingInput() loadcalc.Input {
	return loadcalc.Input{
		Design: climate.DesignConditions{
			IndoorWinterF:  70,
			OutdoorWinterF: -10,
			IndoorSummerF:  75,
			OutdoorSummerF: 95,
			Latitude:       40,
		},
		Surfaces: []loadcalc.Surface{
			{Name: "walls", Kind: loadcalc.SurfaceWall, AreaSqFt: 1800, UValue: 0.05},
			{Name: "roof", Kind: loadcalc.SurfaceRoof, AreaSqFt: 1200, UValue: 0.03},
			{Name: "south glass", Kind: loadcalc.SurfaceWindow, AreaSqFt: 80, UValue: 0.55, SHGC: 0.4, Orient: climate.South},
		},
		Infiltration: loadcalc.Infiltration{Method: loadcalc.MethodACH, Value: 0.35, VolumeCuFt: 14400},
		Ducts:        loadcalc.Ducts{Location: loadcalc.DuctConditioned},
		Internals:    loadcalc.Internals{Occupants: 3},
	}
}

func projectInput() Input {
	return Input{
		Building: buildingInput(),
		Rooms: []RoomSpec{
			{Name: "great room", AreaSqFt: 600},
			{Name: "kitchen", AreaSqFt: 300},
			{Name: "bed 1", AreaSqFt: 200},
			{Name: "bed 2", AreaSqFt: 100},
		},
	}
}

func TestCalculateApportionment(t *testing.T) {
	res, err := Calculate(projectInput())
	require.NoError(t, err)
	require.Len(t, res.Rooms, 4)

	var fracSum, heatSum, coolSum float64
	for _, room := range res.Rooms {
		fracSum += room.AreaFraction
		heatSum += room.HeatingBTU
		coolSum += room.CoolingTotalBTU
	}
	assert.InDelta(t, 1.0, fracSum, 1e-9)
	assert.InDelta(t, res.System.HeatingBTU, heatSum, float64(len(res.Rooms)))
	assert.InDelta(t, res.System.CoolingTotalBTU, coolSum, float64(len(res.Rooms)))

	assert.Equal(t, 0.5, res.Rooms[0].AreaFraction)
	assert.Greater(t, res.Rooms[0].CoolingCFM, res.Rooms[3].CoolingCFM)
}

func TestCalculateBuildsSchedules(t *testing.T) {
	res, err := Calculate(projectInput())
	require.NoError(t, err)

	require.Len(t, res.Ducts.Branches, 4)
	require.Len(t, res.Terminals, 4)
	assert.Equal(t, "great room", res.Ducts.Branches[0].Name)
	assert.Equal(t, "great room", res.Terminals[0].RoomName)

	var cfmSum float64
	for _, room := range res.Rooms {
		cfmSum += room.CoolingCFM
	}
	assert.Equal(t, cfmSum, res.Ducts.TotalCFM)
}

func TestCalculateCFMOverride(t *testing.T) {
	in := projectInput()
	in.Rooms[2].CFM = 175

	res, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, 175.0, res.Rooms[2].CoolingCFM)
	assert.Equal(t, 175.0, res.Ducts.Branches[2].CFM)
	assert.Equal(t, 175.0, res.Terminals[2].RequiredCFM)
}

func TestCalculateErrors(t *testing.T) {
	_, err := Calculate(Input{Building: buildingInput()})
	assert.Error(t, err)

	zeroArea := projectInput()
	for i := range zeroArea.Rooms {
		zeroArea.Rooms[i].AreaSqFt = 0
	}
	_, err = Calculate(zeroArea)
	assert.Error(t, err)

	negative := projectInput()
	negative.Rooms[1].AreaSqFt = -50
	_, err = Calculate(negative)
	assert.Error(t, err)

	badBuilding := projectInput()
	badBuilding.Building.Surfaces = nil
	_, err = Calculate(badBuilding)
	assert.Error(t, err)
}
