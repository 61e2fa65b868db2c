package convert

import (
	"encoding/json"
	"reflect"
	"testing"
)

func mustRecords(t *testing.T, doc string) []Record {
	t.Helper()
	var recs []Record
	if err := json.Unmarshal([]byte(doc), &recs); err != nil {
		t.Fatalf("parsing record fixture: %v", err)
	}
	return recs
}

func TestFieldNames_FirstSeenOrder(t *testing.T) {
	recs := mustRecords(t, `[{"b":1,"a":2},{"c":3,"a":4}]`)
	got := fieldNames(recs)
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fieldNames = %v, want %v", got, want)
	}
}

func TestFieldNames_UnionOfDisjointRecords(t *testing.T) {
	recs := mustRecords(t, `[{"x":1},{"y":2},{"z":3}]`)
	got := fieldNames(recs)
	want := []string{"x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fieldNames = %v, want %v", got, want)
	}
}

func TestFieldNames_StableAcrossCalls(t *testing.T) {
	recs := mustRecords(t, `[{"m":1,"n":2,"o":3},{"p":4,"n":5}]`)
	first := fieldNames(recs)
	for i := 0; i < 10; i++ {
		if got := fieldNames(recs); !reflect.DeepEqual(got, first) {
			t.Fatalf("call %d: fieldNames = %v, want %v", i, got, first)
		}
	}
}

func TestFieldNames_NonObjectEntriesContributeNothing(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"scalar and string entries", `[42,"str",{"a":1}]`},
		// An array entry must not leak its indexes as column names.
		{"array entry", `[[1,2],{"a":1}]`},
		{"null entry", `[null,{"a":1}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := mustRecords(t, tt.doc)
			got := fieldNames(recs)
			want := []string{"a"}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("fieldNames = %v, want %v", got, want)
			}
		})
	}
}
