package cmd

import "github.com/xuri/excelize/v2"

// Visual constants of the report. Colors and patterns match the established
// SVCheck report look; changing them changes every sheet uniformly.
const (
	columnWidth     = 25.0
	headerFillColor = "0066CC"
	evenRowColor    = "66CC00"
	oddRowColor     = "B3FF66"

	// excelize pattern fill indices
	patternDarkGrid  = 9
	patternLightGrid = 15
)

var centered = &excelize.Alignment{Horizontal: "center", Vertical: "center"}

// formatSheet applies the deterministic sheet styling: every column at a
// fixed uniform width, a bold filled header row, every cell centered both
// ways, and data rows banded between two fill colors keyed on row parity.
// It is stateless and idempotent: formatting the same content twice yields
// the same visual result.
func formatSheet(f *excelize.File, sheet string, cols, rows int) error {
	if cols == 0 {
		return nil
	}

	lastCol, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, columnWidth); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Family: "Calibri",
			Size:   12,
			Bold:   true,
			Color:  "000000",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: patternDarkGrid,
			Color:   []string{headerFillColor},
		},
		Alignment: centered,
	})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	evenStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: patternDarkGrid,
			Color:   []string{evenRowColor},
		},
		Alignment: centered,
	})
	if err != nil {
		return err
	}
	oddStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: patternLightGrid,
			Color:   []string{oddRowColor},
		},
		Alignment: centered,
	})
	if err != nil {
		return err
	}

	// Banding starts at the first data row (worksheet row 2); the header row
	// is excluded from banding.
	for row := 2; row <= rows+1; row++ {
		style := evenStyle
		if row%2 == 1 {
			style = oddStyle
		}
		first, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(cols, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, first, last, style); err != nil {
			return err
		}
	}
	return nil
}
