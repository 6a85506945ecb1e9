package htable

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is one input item: an insertion-ordered mapping from field name
// to a scalar value (string, any numeric type, bool, time.Time, or nil).
// Field order matters only when no explicit column list is configured, in
// which case the first record's order becomes the column order.
type Record struct {
	fields *orderedmap.OrderedMap[string, any]
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: orderedmap.New[string, any]()}
}

// Set stores value under field and returns the record for chaining.
// Re-setting an existing field keeps its original position.
func (r *Record) Set(field string, value any) *Record {
	r.fields.Set(field, value)
	return r
}

// Get returns the value stored under field and whether it is present.
func (r *Record) Get(field string) (any, bool) {
	return r.fields.Get(field)
}

// Fields returns the field names in insertion order.
func (r *Record) Fields() []string {
	names := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Len returns the number of fields.
func (r *Record) Len() int { return r.fields.Len() }
