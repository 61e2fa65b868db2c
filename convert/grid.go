package convert

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/xuri/excelize/v2"
)

// sheetStyles holds the style IDs registered once per workbook. The
// highlight style is the data style plus a fill, composed up front;
// style values are never mutated per cell.
type sheetStyles struct {
	header    int
	data      int
	highlight int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	thin := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00008B"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thin,
	})
	if err != nil {
		return sheetStyles{}, fmt.Errorf("header style: %w", err)
	}

	dataStyle := excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "top", WrapText: true},
		Border:    thin,
	}
	data, err := f.NewStyle(&dataStyle)
	if err != nil {
		return sheetStyles{}, fmt.Errorf("data style: %w", err)
	}

	// Light yellow fill signals "this cell has hidden content".
	highlightStyle := dataStyle
	highlightStyle.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF99"}}
	highlight, err := f.NewStyle(&highlightStyle)
	if err != nil {
		return sheetStyles{}, fmt.Errorf("highlight style: %w", err)
	}

	return sheetStyles{header: header, data: data, highlight: highlight}, nil
}

// buildGrid renders the header row plus one row per record onto sheet,
// columns positional per fields. Returns the number of cells that
// received an overflow annotation.
func buildGrid(f *excelize.File, sheet string, records []Record, fields []string, opts Options) (int, error) {
	styles, err := newSheetStyles(f)
	if err != nil {
		return 0, err
	}

	for i, name := range fields {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return 0, err
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return 0, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styles.header); err != nil {
			return 0, err
		}
	}

	annotated := 0
	for row, rec := range records {
		values := rec.Values()
		for col, name := range fields {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return annotated, err
			}
			if err := f.SetCellStyle(sheet, cell, cell, styles.data); err != nil {
				return annotated, err
			}
			ok, err := setCellValue(f, sheet, cell, name, values[name], styles, opts)
			if err != nil {
				return annotated, err
			}
			if ok {
				annotated++
			}
		}
	}
	return annotated, nil
}

// setCellValue stores one field value, routing overflowing strings
// through the annotation path. Only string-shaped values are length
// checked; numbers and booleans are stored as-is and null (or an absent
// field) becomes an empty cell.
func setCellValue(f *excelize.File, sheet, cell, field string, value gjson.Result, styles sheetStyles, opts Options) (bool, error) {
	var s string
	switch value.Type {
	case gjson.Null:
		return false, f.SetCellValue(sheet, cell, "")
	case gjson.Number:
		return false, f.SetCellValue(sheet, cell, value.Float())
	case gjson.True, gjson.False:
		return false, f.SetCellValue(sheet, cell, value.Bool())
	case gjson.String:
		s = value.String()
	default:
		// Nested objects and arrays keep their canonical JSON text.
		s = value.Raw
	}

	if len([]rune(s)) <= opts.MaxCellLength {
		return false, f.SetCellValue(sheet, cell, s)
	}
	return setOverflowCell(f, sheet, cell, field, s, styles, opts)
}

// setOverflowCell writes the truncated marker, attaches the full-value
// annotation, and highlights the cell. A failed attach downgrades the
// cell to a length-only placeholder and is logged; it never aborts the
// conversion.
func setOverflowCell(f *excelize.File, sheet, cell, field, full string, styles sheetStyles, opts Options) (bool, error) {
	kind := classifyContent(full)

	if err := f.SetCellValue(sheet, cell, displayText(kind, field, full)); err != nil {
		return false, err
	}

	comment := excelize.Comment{
		Cell:   cell,
		Author: opts.CommentAuthor,
		Paragraph: []excelize.RichTextRun{
			{
				Text: commentText(kind, field, full, opts.CommentPreviewLength),
				Font: &excelize.Font{Family: "宋体", Size: 9},
			},
		},
	}
	if err := f.AddComment(sheet, comment); err != nil {
		log.Warn().
			Str("cell", cell).
			Str("field", field).
			Err(err).
			Msg("could not attach annotation, keeping length placeholder")
		if err := f.SetCellValue(sheet, cell, overflowFallback(full)); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := f.SetCellStyle(sheet, cell, cell, styles.highlight); err != nil {
		return false, err
	}
	return true, nil
}
