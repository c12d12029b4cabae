package cmd

import (
	"log/slog"

	"github.com/xuri/excelize/v2"
)

// reportWriter owns the single report artifact. The first sheet creates the
// workbook; every later sheet reopens the file, appends, and saves again.
// That reopen-and-rewrite discipline is deliberate: if the run dies after N
// of M commands, the file on disk already holds N complete, fully formatted
// sheets.
type reportWriter struct {
	path    string
	created bool
	log     *slog.Logger
}

func newReportWriter(path string, logger *slog.Logger) *reportWriter {
	return &reportWriter{path: path, log: logger}
}

// addSheet converts one command's result into a sheet, formats it, and
// persists the whole workbook. The system-summary command gets its
// dedicated transform; everything else goes through the generic conversion.
func (r *reportWriter) addSheet(commandName string, result commandResult) error {
	var (
		s   *sheet
		err error
	)
	if commandName == summaryCommand {
		s, err = buildSummarySheet(result)
		if err != nil {
			return &persistenceError{path: r.path, err: err}
		}
	} else {
		s = buildSheet(commandName, result)
	}
	return r.writeSheet(s)
}

func (r *reportWriter) writeSheet(s *sheet) error {
	var f *excelize.File
	if !r.created {
		f = excelize.NewFile()
		if err := f.SetSheetName(f.GetSheetName(0), s.name); err != nil {
			return &persistenceError{path: r.path, err: err}
		}
	} else {
		var err error
		f, err = excelize.OpenFile(r.path)
		if err != nil {
			return &persistenceError{path: r.path, err: err}
		}
		if _, err := f.NewSheet(s.name); err != nil {
			return &persistenceError{path: r.path, err: err}
		}
	}
	defer func() { _ = f.Close() }()

	r.log.Debug("loading sheet rows", "sheet", s.name, "rows", len(s.rows))
	if len(s.header) > 0 {
		header := make([]any, len(s.header))
		for i, h := range s.header {
			header[i] = h
		}
		if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
			return &persistenceError{path: r.path, err: err}
		}
		for i, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return &persistenceError{path: r.path, err: err}
			}
			rowVals := row
			if err := f.SetSheetRow(s.name, cell, &rowVals); err != nil {
				return &persistenceError{path: r.path, err: err}
			}
		}
	}

	if err := formatSheet(f, s.name, len(s.header), len(s.rows)); err != nil {
		return &persistenceError{path: r.path, err: err}
	}

	r.log.Debug("saving report", "sheet", s.name, "path", r.path)
	if err := f.SaveAs(r.path); err != nil {
		return &persistenceError{path: r.path, err: err}
	}
	r.created = true
	r.log.Info("saved sheet into report", "sheet", s.name)
	return nil
}

// sheetCount reports how many sheets the on-disk artifact currently holds.
func (r *reportWriter) sheetCount() (int, error) {
	if !r.created {
		return 0, nil
	}
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return 0, &persistenceError{path: r.path, err: err}
	}
	defer func() { _ = f.Close() }()
	return len(f.GetSheetList()), nil
}
