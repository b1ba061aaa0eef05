// Package importer turns uploaded room schedules (XLSX or CSV) into a duct
// and terminal schedule. Expected columns: name, area_ft2, cfm.
package importer

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"Plenum/internal/calc/duct"
	"Plenum/internal/calc/terminal"
)

type roomRow struct {
	Name     string  `csv:"name"`
	AreaSqFt float64 `csv:"area_ft2"`
	CFM      float64 `csv:"cfm"`
}

type ScheduleResult struct {
	Count     int                  `json:"count"`
	Skipped   int                  `json:"skipped"`
	Ducts     duct.Result          `json:"ducts"`
	Terminals []terminal.Selection `json:"terminals"`
}

// FromXLSX reads the first sheet, skipping the header row and any row that
// does not parse. Bad rows are counted, not fatal.
func FromXLSX(r io.Reader) (ScheduleResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ScheduleResult{}, fmt.Errorf("invalid workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return ScheduleResult{}, fmt.Errorf("empty sheet")
	}

	var parsed []roomRow
	skipped := 0
	for i := 1; i < len(rows); i++ {
		row, err := parseRow(rows[i])
		if err != nil {
			skipped++
			continue
		}
		parsed = append(parsed, row)
	}
	return buildSchedule(parsed, skipped)
}

// FromCSV reads a comma-separated schedule with a name,area_ft2,cfm header.
func FromCSV(r io.Reader) (ScheduleResult, error) {
	var rows []roomRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return ScheduleResult{}, fmt.Errorf("invalid csv: %w", err)
	}
	valid := make([]roomRow, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		if row.Name == "" || row.CFM <= 0 || row.AreaSqFt < 0 {
			skipped++
			continue
		}
		valid = append(valid, row)
	}
	return buildSchedule(valid, skipped)
}

func parseRow(cells []string) (roomRow, error) {
	if len(cells) < 3 || cells[0] == "" {
		return roomRow{}, fmt.Errorf("bad row")
	}
	area, err := toFloat(cells[1])
	if err != nil || area < 0 {
		return roomRow{}, fmt.Errorf("bad area")
	}
	cfm, err := toFloat(cells[2])
	if err != nil || cfm <= 0 {
		return roomRow{}, fmt.Errorf("bad cfm")
	}
	return roomRow{Name: cells[0], AreaSqFt: area, CFM: cfm}, nil
}

func buildSchedule(rows []roomRow, skipped int) (ScheduleResult, error) {
	if len(rows) == 0 {
		return ScheduleResult{}, fmt.Errorf("no usable rooms in schedule")
	}
	ductRooms := make([]duct.Room, 0, len(rows))
	termRooms := make([]terminal.Room, 0, len(rows))
	for _, row := range rows {
		ductRooms = append(ductRooms, duct.Room{Name: row.Name, CFM: row.CFM})
		termRooms = append(termRooms, terminal.Room{Name: row.Name, CFM: row.CFM, AreaSqFt: row.AreaSqFt})
	}

	ducts, err := duct.Design(duct.Input{Rooms: ductRooms})
	if err != nil {
		return ScheduleResult{}, err
	}
	terminals, err := terminal.SelectRooms(termRooms, terminal.Options{})
	if err != nil {
		return ScheduleResult{}, err
	}
	return ScheduleResult{
		Count:     len(rows),
		Skipped:   skipped,
		Ducts:     ducts,
		Terminals: terminals,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
