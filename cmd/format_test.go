package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fillHas checks a fill color regardless of how the library normalizes hex
// values (#-prefix, ARGB alpha, case).
func fillHas(t *testing.T, style *excelize.Style, hex string) {
	t.Helper()
	for _, c := range style.Fill.Color {
		if strings.Contains(strings.ToUpper(c), strings.ToUpper(hex)) {
			return
		}
	}
	t.Fatalf("fill colors %v do not include %s", style.Fill.Color, hex)
}

func newFormattedSheet(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), "lshost"))
	require.NoError(t, f.SetSheetRow("lshost", "A1", &[]any{"id", "name", "status"}))
	require.NoError(t, f.SetSheetRow("lshost", "A2", &[]any{"0", "esx-01", "online"}))
	require.NoError(t, f.SetSheetRow("lshost", "A3", &[]any{"1", "esx-02", "online"}))
	require.NoError(t, f.SetSheetRow("lshost", "A4", &[]any{"2", "esx-03", "offline"}))
	require.NoError(t, formatSheet(f, "lshost", 3, 3))
	return f
}

type sheetLook struct {
	widths [3]float64
	styles [4]*excelize.Style
	rows   [][]string
}

func captureLook(t *testing.T, f *excelize.File) sheetLook {
	t.Helper()
	var look sheetLook
	for i, col := range []string{"A", "B", "C"} {
		w, err := f.GetColWidth("lshost", col)
		require.NoError(t, err)
		look.widths[i] = w
	}
	for i, cell := range []string{"A1", "A2", "A3", "A4"} {
		id, err := f.GetCellStyle("lshost", cell)
		require.NoError(t, err)
		style, err := f.GetStyle(id)
		require.NoError(t, err)
		look.styles[i] = style
	}
	rows, err := f.GetRows("lshost")
	require.NoError(t, err)
	look.rows = rows
	return look
}

func TestFormatSheet_Attributes(t *testing.T) {
	f := newFormattedSheet(t)
	t.Cleanup(func() { _ = f.Close() })
	look := captureLook(t, f)

	for _, w := range look.widths {
		require.Equal(t, columnWidth, w)
	}

	header := look.styles[0]
	require.NotNil(t, header.Font)
	require.True(t, header.Font.Bold)
	require.Equal(t, "Calibri", header.Font.Family)
	require.Equal(t, float64(12), header.Font.Size)
	fillHas(t, header, headerFillColor)
	require.NotNil(t, header.Alignment)
	require.Equal(t, "center", header.Alignment.Horizontal)
	require.Equal(t, "center", header.Alignment.Vertical)

	// Banding keyed by row parity, header excluded
	fillHas(t, look.styles[1], evenRowColor)
	fillHas(t, look.styles[2], oddRowColor)
	fillHas(t, look.styles[3], evenRowColor)
	for _, s := range look.styles[1:] {
		require.NotNil(t, s.Alignment)
		require.Equal(t, "center", s.Alignment.Horizontal)
		require.Equal(t, "center", s.Alignment.Vertical)
	}
}

// Formatting the same sheet content twice must produce the same visual
// result as formatting it once.
func TestFormatSheet_Idempotent(t *testing.T) {
	f := newFormattedSheet(t)
	t.Cleanup(func() { _ = f.Close() })
	once := captureLook(t, f)

	require.NoError(t, formatSheet(f, "lshost", 3, 3))
	twice := captureLook(t, f)

	require.Equal(t, once.widths, twice.widths)
	require.Equal(t, once.rows, twice.rows)
	for i := range once.styles {
		require.Equal(t, once.styles[i].Font, twice.styles[i].Font)
		require.Equal(t, once.styles[i].Fill, twice.styles[i].Fill)
		require.Equal(t, once.styles[i].Alignment, twice.styles[i].Alignment)
	}
}

// A sheet with no columns (empty command result) formats as a no-op.
func TestFormatSheet_ZeroColumns(t *testing.T) {
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), "lshostcluster"))
	require.NoError(t, formatSheet(f, "lshostcluster", 0, 0))
}
