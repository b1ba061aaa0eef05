package loadcalc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcHandler(t *testing.T) {
	body := `{
		"design": {"indoor_winter_f":70,"outdoor_winter_f":-10,"indoor_summer_f":75,"outdoor_summer_f":95},
		"surfaces": [{"name":"wall","kind":"wall","area_sqft":1000,"u_value":0.05}],
		"infiltration": {"method":"CFM","value":0},
		"ducts": {"location":"conditioned"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/loads/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 4000.0, res.HeatingBTU)
	assert.Equal(t, res.CoolingTotalBTU, res.CoolingSensibleBTU+res.CoolingLatentBTU)
}

func TestCalcHandlerBadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/loads/calc", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCalcHandlerValidation(t *testing.T) {
	body := `{
		"design": {"indoor_winter_f":70,"outdoor_winter_f":-10,"indoor_summer_f":75,"outdoor_summer_f":95},
		"surfaces": [{"name":"wall","area_sqft":-10,"u_value":0.05}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/loads/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h := &Handler{}
	h.Calc(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "area")
}
