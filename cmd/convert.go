package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ywlabs/json2xlsx/config"
	"github.com/ywlabs/json2xlsx/convert"
	"github.com/ywlabs/json2xlsx/internal"
)

var (
	convertSheet  string
	convertAuthor string
	convertJSON   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <json-file> [xlsx-file]",
	Short: "Convert a paginated JSON API response to an Excel workbook",
	Long: `Convert a paginated JSON API response file into a single-sheet
Excel workbook, one row per record.

Behavior:
  - Column headers are the union of field names across all records,
    in first-seen order. Missing fields render as empty cells.
  - String values longer than the cell limit are truncated to a typed
    marker (JSON/XML/Base64/text) and the content is attached to the
    cell as an annotation, with the cell highlighted.
  - If [xlsx-file] is omitted, it is derived from the input path by
    replacing the first "json" with "xlsx".
  - An existing file at the output path is overwritten.
  - Exit code 2 when the response parses but contains no records.

Use --json for a machine-readable summary.

Examples:
  json2xlsx convert export.json
  json2xlsx convert export.json report.xlsx
  json2xlsx convert --sheet "Orders" export.json
  json2xlsx convert --json export.json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertSheet, "sheet", "", "Sheet name for the output workbook")
	convertCmd.Flags().StringVar(&convertAuthor, "author", "", "Author label on overflow annotations")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "Output a JSON summary instead of a human-formatted one")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	jsonPath := args[0]
	xlsxPath := internal.DeriveOutputPath(jsonPath)
	if len(args) > 1 {
		xlsxPath = args[1]
	}

	opts, err := resolveOptions()
	if err != nil {
		return err
	}

	result, err := convert.Convert(jsonPath, xlsxPath, opts)
	if err != nil {
		if errors.Is(err, convert.ErrEmptyData) {
			fmt.Fprintln(os.Stderr, err)
			return &ExitError{Code: 2}
		}
		return err
	}

	if convertJSON {
		return jsonPrint(result)
	}

	fmt.Printf("Excel file written: %s\n", result.OutputPath)
	fmt.Printf("%d records, %d columns", result.Records, result.Columns)
	if result.Annotated > 0 {
		fmt.Printf(", %d annotated cells", result.Annotated)
	}
	fmt.Println()
	return nil
}

// resolveOptions layers conversion settings: built-in defaults, then
// the config file, then flags.
func resolveOptions() (convert.Options, error) {
	opts := convert.DefaultOptions()

	cfg, err := config.Load()
	if err != nil {
		return opts, fmt.Errorf("loading config: %w", err)
	}
	if cfg.SheetName != "" {
		opts.SheetName = cfg.SheetName
	}
	if cfg.CommentAuthor != "" {
		opts.CommentAuthor = cfg.CommentAuthor
	}
	if cfg.MaxCellLength > 0 {
		opts.MaxCellLength = cfg.MaxCellLength
	}
	if cfg.CommentPreviewLength > 0 {
		opts.CommentPreviewLength = cfg.CommentPreviewLength
	}

	if convertSheet != "" {
		opts.SheetName = convertSheet
	}
	if convertAuthor != "" {
		opts.CommentAuthor = convertAuthor
	}
	return opts, nil
}
