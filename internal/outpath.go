package internal

import "strings"

// DeriveOutputPath maps a JSON input path to its default workbook path:
// the first "json" substring becomes "xlsx", which covers .json
// extensions as well as json-named stems. A path with no "json"
// substring gets ".xlsx" appended so the input file is never named as
// its own output.
func DeriveOutputPath(jsonPath string) string {
	out := strings.Replace(jsonPath, "json", "xlsx", 1)
	if out == jsonPath {
		return jsonPath + ".xlsx"
	}
	return out
}
