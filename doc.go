// Package htable renders record collections as styled HTML tables.
//
// A [Record] is an insertion-ordered map of field names to scalar values
// (strings, numbers, booleans, times, or nil). The central entry points are
// [Write], [Marshal], and [Render], which take an [Options] value and
// variadic records and produce one self-contained <table> fragment using
// inline styles only — no external CSS or JS, suitable for embedding in
// reports and email bodies. Field values are emitted verbatim; the package
// performs no HTML escaping and no validation of the output.
//
// # Columns
//
// Display columns come from the first record's field order. Set
// [Options.Columns] to select and reorder them explicitly:
//
//	rec := htable.NewRecord().Set("Name", "Alice").Set("Age", 42)
//	out, err := htable.Render(htable.Options{Columns: []string{"Age", "Name"}}, rec)
//
// Requested names the first record does not have are dropped; fields not
// requested are omitted. With no records at all, a single row carrying
// [Options.EmptyMessage] is emitted instead of data rows.
//
// # Styling
//
// Table-wide looks are plain option fields: title and header colors,
// two alternating row backgrounds, and a table style appended after the
// built-in base style. Per-cell styling uses [Rule] values, each matching
// a row parity and a column and contributing one CSS property:value
// fragment to matching cells:
//
//	htable.Options{Rules: []htable.Rule{
//		{Rows: htable.OddRows, Property: "color", Value: "red"},
//		{Column: "Age", Property: "font-weight", Value: "bold"},
//	}}
//
// Matching fragments accumulate in declaration order and are never
// de-duplicated; when two rules set the same property, the CSS cascade
// picks the winner at display time. Cells holding non-textual values
// (numbers, booleans, times, nil) are centered unless a rule or attribute
// already set an alignment.
//
// # Streaming
//
// [WriteIter] and [WriteChan] render from an iterator or channel in a
// single pass, emitting each row as its record arrives. The header is
// deferred until the first record, and the empty-state row appears only if
// the stream ends without one.
//
// # Configuration files
//
// [ParseOptions] loads an [Options] value from a YAML document, including
// rules with string row selectors ("any", "odd", "even").
//
// # Errors
//
// Rendering never fails on irregular data: missing fields become empty
// cells, rules matching nothing are inert, and an empty input produces the
// empty-state table. The package exports sentinel errors for the genuine
// failure cases:
//
//   - [ErrInvalidSelector] — a rule names an unknown row parity
//   - [ErrInvalidConfig] — [ParseOptions] received invalid YAML
package htable
