package convert

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// ApiResponse is the envelope of a paginated API export.
type ApiResponse struct {
	Code      int           `json:"code"`
	Msg       string        `json:"msg"`
	RequestID string        `json:"requestId"`
	Data      *ResponseData `json:"data"`
}

// ResponseData carries the pagination metadata and the record list.
// The wire format names the record list "data", same as its parent key.
type ResponseData struct {
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	Order   string   `json:"order"`
	Field   string   `json:"field"`
	Total   int      `json:"total"`
	Records []Record `json:"data"`
}

// Record is one row-to-be: an arbitrary JSON object kept in raw form so
// field values stay loosely typed until cell rendering. Non-object
// entries are tolerated and contribute no fields.
type Record struct {
	raw json.RawMessage
}

func (r *Record) UnmarshalJSON(data []byte) error {
	r.raw = append(r.raw[:0], data...)
	return nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("null"), nil
	}
	return r.raw, nil
}

// EachField calls fn for every field in document order. Returning false
// from fn stops the iteration. Non-object records have no fields;
// iterating an array or scalar directly would yield index or empty
// keys.
func (r Record) EachField(fn func(name string, value gjson.Result) bool) {
	parsed := gjson.ParseBytes(r.raw)
	if !parsed.IsObject() {
		return
	}
	parsed.ForEach(func(key, value gjson.Result) bool {
		return fn(key.String(), value)
	})
}

// Values returns the field→value map for one record. Absent fields look
// up as the zero Result, whose type is Null.
func (r Record) Values() map[string]gjson.Result {
	return gjson.ParseBytes(r.raw).Map()
}
