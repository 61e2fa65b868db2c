// Package convert turns a paginated JSON API response into a
// single-sheet Excel workbook. String values too long for a cell are
// truncated to a typed marker and carried in full (up to a preview
// limit) by a cell annotation.
package convert

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// Result summarizes a completed conversion.
type Result struct {
	Records    int    `json:"records"`
	Columns    int    `json:"columns"`
	Annotated  int    `json:"annotated"`
	OutputPath string `json:"output_path"`
}

// Convert reads an API response from jsonPath and writes it as a
// workbook at xlsxPath, overwriting any existing file there. The
// workbook handle is released on every exit path. Per-cell annotation
// failures are survivable; load and write failures abort, with no
// output written on a load failure.
func Convert(jsonPath, xlsxPath string, opts Options) (*Result, error) {
	resp, err := Load(jsonPath)
	if err != nil {
		return nil, err
	}
	records := resp.Data.Records
	fields := fieldNames(records)

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("closing workbook")
		}
	}()

	sheet := opts.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	annotated, err := buildGrid(f, sheet, records, fields, opts)
	if err != nil {
		return nil, fmt.Errorf("building sheet: %w", err)
	}

	if err := f.SaveAs(xlsxPath); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	log.Debug().
		Int("records", len(records)).
		Int("columns", len(fields)).
		Int("annotated", annotated).
		Str("output", xlsxPath).
		Msg("conversion complete")

	return &Result{
		Records:    len(records),
		Columns:    len(fields),
		Annotated:  annotated,
		OutputPath: xlsxPath,
	}, nil
}
