package convert

const (
	// defaultMaxCellLength stays below Excel's 32767-character cell cap
	// with headroom for the marker templates.
	defaultMaxCellLength        = 32700
	defaultCommentPreviewLength = 1000

	defaultSheetName     = "数据导出"
	defaultCommentAuthor = "数据导出系统"
)

// Options carries the tunable parts of a conversion. Conversions are
// stateless; everything configurable travels through this value. The
// zero value is not usable — start from DefaultOptions.
type Options struct {
	// SheetName names the single output sheet.
	SheetName string
	// CommentAuthor is the author label on overflow annotations.
	CommentAuthor string
	// MaxCellLength is the longest string stored verbatim in a cell,
	// in characters. Longer values take the overflow path.
	MaxCellLength int
	// CommentPreviewLength is how many characters of an overflowing
	// value the annotation previews.
	CommentPreviewLength int
}

// DefaultOptions returns the stock conversion settings.
func DefaultOptions() Options {
	return Options{
		SheetName:            defaultSheetName,
		CommentAuthor:        defaultCommentAuthor,
		MaxCellLength:        defaultMaxCellLength,
		CommentPreviewLength: defaultCommentPreviewLength,
	}
}
