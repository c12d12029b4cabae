package cmd

import "encoding/json"

// sheet is one tabular page of the report: a header of column names and rows
// of values aligned to it. The header is the ordered key set of the result's
// first record; records missing a key produce an empty cell and keys that
// appear only in later records are not added (columns are fixed by the first
// record, matching how the array reports uniform record shapes).
type sheet struct {
	name   string
	header []string
	rows   [][]any
}

// buildSheet converts a generic command result into a sheet. An empty result
// yields a sheet with no header and no rows.
func buildSheet(name string, result commandResult) *sheet {
	s := &sheet{name: name}
	if len(result) == 0 {
		return s
	}
	s.header = append(s.header, result[0].keys...)
	for _, rec := range result {
		row := make([]any, 0, len(s.header))
		for _, key := range s.header {
			v, ok := rec.get(key)
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, cellValue(v))
		}
		s.rows = append(s.rows, row)
	}
	return s
}

// cellValue renders a decoded record value as a spreadsheet cell value.
// Scalars pass through (numbers typed so Excel treats them numerically);
// nested structures render as compact JSON text.
func cellValue(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case string, bool:
		return t
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
