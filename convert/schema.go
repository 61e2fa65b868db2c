package convert

import "github.com/tidwall/gjson"

// fieldNames returns the union of field names across all records in
// first-seen document order. The same order is used for the header row
// and for every data row, so cell-to-field mapping stays positional.
func fieldNames(records []Record) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		rec.EachField(func(name string, _ gjson.Result) bool {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
			return true
		})
	}
	return names
}
