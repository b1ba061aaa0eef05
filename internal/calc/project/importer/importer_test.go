package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFromCSV(t *testing.T) {
	src := strings.NewReader(
		"name,area_ft2,cfm\n" +
			"great room,600,400\n" +
			"kitchen,300,200\n" +
			"bed 1,200,120\n")

	res, err := FromCSV(src)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Count)
	assert.Equal(t, 0, res.Skipped)
	assert.Equal(t, 720.0, res.Ducts.TotalCFM)
	require.Len(t, res.Terminals, 3)
	assert.Equal(t, "great room", res.Terminals[0].RoomName)
	assert.Equal(t, 3, res.Terminals[0].Registers)
}

func TestFromCSVSkipsBadRows(t *testing.T) {
	src := strings.NewReader(
		"name,area_ft2,cfm\n" +
			"kitchen,300,200\n" +
			",150,100\n" +
			"pantry,40,0\n")

	res, err := FromCSV(src)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 2, res.Skipped)
}

func TestFromCSVErrors(t *testing.T) {
	_, err := FromCSV(strings.NewReader(""))
	assert.Error(t, err)

	_, err = FromCSV(strings.NewReader("name,area_ft2,cfm\n"))
	assert.Error(t, err, "header only leaves no usable rooms")
}

func scheduleWorkbook(t *testing.T, rows [][]interface{}) *strings.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"name", "area_ft2", "cfm"}))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return strings.NewReader(buf.String())
}

func TestFromXLSX(t *testing.T) {
	src := scheduleWorkbook(t, [][]interface{}{
		{"great room", 600, 400},
		{"kitchen", 300, 200},
	})

	res, err := FromXLSX(src)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 0, res.Skipped)
	assert.Equal(t, 600.0, res.Ducts.TotalCFM)
	require.Len(t, res.Ducts.Branches, 2)
	assert.Equal(t, "kitchen", res.Ducts.Branches[1].Name)
}

func TestFromXLSXSkipsBadRows(t *testing.T) {
	src := scheduleWorkbook(t, [][]interface{}{
		{"great room", 600, 400},
		{"", 300, 200},
		{"closet", "n/a", 50},
	})

	res, err := FromXLSX(src)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
	assert.Equal(t, 2, res.Skipped)
}

func TestFromXLSXErrors(t *testing.T) {
	_, err := FromXLSX(strings.NewReader("not a workbook"))
	assert.Error(t, err)

	empty := scheduleWorkbook(t, nil)
	_, err = FromXLSX(empty)
	assert.Error(t, err, "header-only sheet")
}
