// Package report renders calculation results into a PDF load report.
package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	"Plenum/internal/calc/duct"
	"Plenum/internal/calc/equipment"
	"Plenum/internal/calc/loadcalc"
	"Plenum/internal/calc/terminal"
)

type Input struct {
	Project   string               `json:"project"`
	Author    string               `json:"author"`
	Title     string               `json:"title"`
	Loads     *loadcalc.Result     `json:"loads,omitempty"`
	Verdict   *equipment.Result    `json:"verdict,omitempty"`
	Ducts     *duct.Result         `json:"ducts,omitempty"`
	Terminals []terminal.Selection `json:"terminals,omitempty"`
	Notes     string               `json:"notes,omitempty"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "HVAC Load & Sizing Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if input.Loads != nil {
		writeLoads(pdf, input.Loads)
	}
	if input.Verdict != nil {
		writeVerdict(pdf, input.Verdict)
	}
	if input.Ducts != nil {
		writeDucts(pdf, input.Ducts)
	}
	if len(input.Terminals) > 0 {
		writeTerminals(pdf, input.Terminals)
	}
	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"load-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
}

func writeLoads(pdf *gofpdf.Fpdf, loads *loadcalc.Result) {
	section(pdf, "Manual J Loads")
	pdf.Cell(0, 5, fmt.Sprintf("Heating: %.0f BTU/hr    Cooling: %.0f BTU/hr (%.0f sensible / %.0f latent)",
		loads.HeatingBTU, loads.CoolingTotalBTU, loads.CoolingSensibleBTU, loads.CoolingLatentBTU))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Supply air: %.0f CFM heating, %.0f CFM cooling", loads.HeatingCFM, loads.CoolingCFM))
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, 6, "Component", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 6, "Heating BTU/hr", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, 6, "Cooling BTU/hr", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range loads.Breakdown {
		pdf.CellFormat(80, 6, line.Component, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%.0f", line.HeatingBTU), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%.0f", line.CoolingBTU), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)
}

func writeVerdict(pdf *gofpdf.Fpdf, v *equipment.Result) {
	section(pdf, "Manual S Equipment Verification")
	pdf.Cell(0, 5, fmt.Sprintf("Status: %s", v.Status))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Ratios: cooling %.3f, sensible %.3f, heating %.3f", v.CoolingRatio, v.SensibleRatio, v.HeatingRatio))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Acceptable cooling window: %.0f - %.0f BTU/hr", v.MinCoolingBTU, v.MaxCoolingBTU))
	pdf.Ln(5)
	if v.Notes != "" {
		pdf.Cell(0, 5, v.Notes)
		pdf.Ln(5)
	}
	pdf.Ln(3)
}

func writeDucts(pdf *gofpdf.Fpdf, d *duct.Result) {
	section(pdf, "Manual D Duct Schedule")
	pdf.Cell(0, 5, fmt.Sprintf("Friction rate: %.3f in. w.c./100 ft    System airflow: %.0f CFM", d.FrictionRate, d.TotalCFM))
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 6, "Branch", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "CFM", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, "Diameter (in)", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 6, "Velocity (FPM)", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, b := range d.Branches {
		pdf.CellFormat(70, 6, b.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.0f", b.CFM), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.1f", b.DiameterIn), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.0f", b.VelocityFPM), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)
}

func writeTerminals(pdf *gofpdf.Fpdf, sels []terminal.Selection) {
	section(pdf, "Manual T Register Schedule")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(60, 6, "Room", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 6, "CFM", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Registers", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, "Throw (ft)", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 6, "Velocity (FPM)", "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, s := range sels {
		pdf.CellFormat(60, 6, s.RoomName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.0f", s.RequiredCFM), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", s.Registers), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.0f", s.ThrowFt), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.0f", s.VelocityFPM), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(5)
}
