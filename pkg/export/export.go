// Package export writes project reports as Excel workbooks.
package export

import (
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/poise/pkg/model"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the single worksheet in an exported workbook.
const SheetName = "Projects"

// Header lists the column titles of the projects sheet.
var Header = []string{
	"Project Number",
	"Project Name",
	"Building Type",
	"Project Address",
	"ERF Number",
	"Total Fee (GBP)",
	"Paid To Date (GBP)",
	"Deadline Date",
	"Completion Date",
	"Finalised",
	"Architect ID",
	"Contractor ID",
	"Customer ID",
}

var columnWidths = []float64{16, 28, 18, 36, 14, 16, 18, 15, 17, 11, 13, 14, 13}

// WriteProjects writes a workbook with one row per project to w.
func WriteProjects(w io.Writer, projects []model.Project) error {
	f, err := build(projects)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "failed to write workbook")
	}

	return nil
}

// SaveProjects writes the projects workbook to path.
func SaveProjects(path string, projects []model.Project) error {
	f, err := build(projects)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return errors.Wrapf(f.SaveAs(path), "failed to save workbook %s", path)
}

func build(projects []model.Project) (*excelize.File, error) {
	f := excelize.NewFile()

	if _, err := f.NewSheet(SheetName); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "failed to create sheet")
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "failed to remove default sheet")
	}

	index, err := f.GetSheetIndex(SheetName)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "failed to find sheet")
	}
	f.SetActiveSheet(index)

	if err := writeHeader(f); err != nil {
		_ = f.Close()
		return nil, err
	}

	for i, p := range projects {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			_ = f.Close()
			return nil, errors.Wrap(err, "failed to convert coordinates")
		}

		if err := f.SetSheetRow(SheetName, cell, ptrRow(p)); err != nil {
			_ = f.Close()
			return nil, errors.Wrapf(err, "failed to write project %d", p.Number)
		}
	}

	return f, nil
}

func writeHeader(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create header style")
	}

	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return errors.Wrap(err, "failed to write header")
	}

	last, err := excelize.CoordinatesToCellName(len(Header), 1)
	if err != nil {
		return errors.Wrap(err, "failed to convert coordinates")
	}
	if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return errors.Wrap(err, "failed to set header style")
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return errors.Wrap(err, "failed to convert column number")
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return errors.Wrap(err, "failed to set column width")
		}
	}

	err = f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	return errors.Wrap(err, "failed to freeze header")
}

// ptrRow returns the cell values of p in Header order. SetSheetRow wants a
// pointer to a slice.
func ptrRow(p model.Project) *[]any {
	var completion any = ""
	if p.IsComplete() {
		completion = p.Completion.String()
	}

	row := []any{
		p.Number,
		p.Name,
		p.BuildingType,
		p.Address,
		p.ErfNumber,
		p.TotalFee.InexactFloat64(),
		p.PaidToDate.InexactFloat64(),
		p.Deadline.String(),
		completion,
		p.Finalised,
		p.ArchitectID,
		p.ContractorID,
		p.CustomerID,
	}

	return &row
}
