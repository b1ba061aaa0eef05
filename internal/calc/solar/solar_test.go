package solar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Plenum/internal/climate"
)

func TestLatitudeBuckets(t *testing.T) {
	table := Default()

	assert.Equal(t, table[30][climate.West], table.Factor(25, climate.West))   // clamp low
	assert.Equal(t, table[30][climate.West], table.Factor(34, climate.West))   // round down
	assert.Equal(t, table[40][climate.West], table.Factor(35, climate.West))   // round up
	assert.Equal(t, table[40][climate.West], table.Factor(44.9, climate.West)) // nearest
	assert.Equal(t, table[50][climate.West], table.Factor(55, climate.West))   // clamp high
}

func TestUnknownOrientationDefault(t *testing.T) {
	table := Default()
	assert.Equal(t, float64(DefaultFactor), table.Factor(40, climate.Mixed))
	assert.Equal(t, float64(DefaultFactor), table.Factor(40, climate.Orientation("up")))
}

func TestHorizontalForRoofs(t *testing.T) {
	table := Default()
	assert.Greater(t, table.Factor(30, climate.Horizontal), table.Factor(50, climate.Horizontal),
		"horizontal gain should fall with latitude")
}

func TestNorthFacingIsSmallest(t *testing.T) {
	table := Default()
	for _, lat := range []float64{30, 40, 50} {
		for _, dir := range climate.CompassDirections()[1:] {
			assert.Less(t, table.Factor(lat, climate.North), table.Factor(lat, dir))
		}
	}
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a[40][climate.West] = 1
	assert.NotEqual(t, 1.0, Default().Factor(40, climate.West))
}
