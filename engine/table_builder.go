package engine

import "fmt"

// ============================================================================
// TABLE BUILDER — Produces TableData from any RecordView
// ============================================================================
// Columns come from view.DimensionKeys() (text, left) followed by
// view.MeasureKeys() (number, right). One row per record.
// ============================================================================

// BuildTable renders view as a table. Measures named in totals are summed
// into the summary row; with no totals only the row count is reported.
func BuildTable(title string, view RecordView, f Formatter, totals ...string) *TableData {
	dimKeys := view.DimensionKeys()
	mesKeys := view.MeasureKeys()

	columns := make([]Column, 0, len(dimKeys)+len(mesKeys))
	for _, key := range dimKeys {
		columns = append(columns, Column{Key: key, Label: LabelForKey(key), Type: "text", Align: "left"})
	}
	for _, key := range mesKeys {
		columns = append(columns, Column{Key: key, Label: LabelForKey(key), Type: "number", Align: "right"})
	}

	rows := make([][]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		row := make([]string, 0, len(columns))
		for _, key := range dimKeys {
			row = append(row, view.Dimension(i, key))
		}
		for _, key := range mesKeys {
			row = append(row, f.Measure(view.Measure(i, key)))
		}
		rows = append(rows, row)
	}

	values := make(map[string]string, len(totals))
	for _, key := range totals {
		values[key] = f.Measure(SumMeasure(view, key))
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label:  fmt.Sprintf("Total (%s rows)", f.Int(view.Len())),
			Values: values,
		},
	}
}
