package htable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidSelector = errors.New("invalid row selector")
	ErrInvalidConfig   = errors.New("invalid configuration")
)

// RowSelector restricts a formatting rule to data rows of one parity.
// Parity is the zero-based index of the row among emitted data rows.
type RowSelector string

const (
	AnyRow   RowSelector = "any"
	OddRows  RowSelector = "odd"
	EvenRows RowSelector = "even"
)

// String returns the selector name.
func (s RowSelector) String() string { return string(s) }

// ParseRowSelector parses a row selector string. The empty string is
// accepted as [AnyRow] so that zero-value rules match everything.
func ParseRowSelector(s string) (RowSelector, error) {
	switch RowSelector(s) {
	case "":
		return AnyRow, nil
	case AnyRow, OddRows, EvenRows:
		return RowSelector(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSelector, s)
}

func (s RowSelector) matches(row int) bool {
	switch s {
	case OddRows:
		return row%2 == 1
	case EvenRows:
		return row%2 == 0
	default:
		return true
	}
}

// Rule adds one CSS property:value fragment to the inline style of every
// cell matched by its row and column selectors. An empty Column matches
// every column; a Column naming no resolved column matches nothing. All
// matching rules accumulate in declaration order, even when two rules set
// the same property: both fragments are emitted and the CSS cascade picks
// the effective value at display time.
type Rule struct {
	Rows     RowSelector
	Column   string
	Property string
	Value    string
}

// Options configures table rendering. The zero value is usable: every
// field falls back to a package default, and an empty Title suppresses
// the title row entirely.
type Options struct {
	// Title is rendered as a single row spanning all columns above the
	// header. Empty means no title row.
	Title string

	// Columns selects and orders the display columns. Names absent from
	// the first record are dropped; nil means the first record's natural
	// field order.
	Columns []string

	// EmptyMessage is the text of the single row emitted when there are
	// no records. Default [DefaultEmptyMessage].
	EmptyMessage string

	// TableStyle is appended, semicolon-joined, after the built-in base
	// style on the table tag. It never replaces the base style.
	TableStyle string

	TitleBackground  string
	TitleForeground  string
	HeaderBackground string
	HeaderForeground string

	// RowBackgroundA and RowBackgroundB alternate as data-row
	// backgrounds: A on even row indexes, B on odd.
	RowBackgroundA string
	RowBackgroundB string

	// Rules are per-cell formatting rules, applied in order.
	Rules []Rule

	// MaxCellText caps the display width of cell text, truncating with
	// "..." where it fits. Zero means no limit.
	MaxCellText int

	// LegacyAttributes enables the reserved-prefix attribute mechanism:
	// a field named "attr_<name>:<column>" injects <name>="<value>" into
	// that column's cell, and "attr_<name>" into every cell of the row.
	//
	// Deprecated: carry attributes via Rules instead. Reserved-prefix
	// fields are excluded from display columns whether or not this flag
	// is set.
	LegacyAttributes bool
}

// DefaultEmptyMessage is the empty-state row text when
// [Options.EmptyMessage] is unset.
const DefaultEmptyMessage = "No records"

const (
	baseTableStyle = "font-family:Arial,Helvetica,sans-serif;font-size:12px;border-collapse:collapse"

	defaultTitleBackground  = "#2f4f6f"
	defaultTitleForeground  = "#ffffff"
	defaultHeaderBackground = "#c8c8c8"
	defaultHeaderForeground = "#000000"
	defaultRowBackgroundA   = "#ffffff"
	defaultRowBackgroundB   = "#efefef"

	emptyMessageColor = "#808080"
)

func (o Options) withDefaults() Options {
	if o.EmptyMessage == "" {
		o.EmptyMessage = DefaultEmptyMessage
	}
	if o.TitleBackground == "" {
		o.TitleBackground = defaultTitleBackground
	}
	if o.TitleForeground == "" {
		o.TitleForeground = defaultTitleForeground
	}
	if o.HeaderBackground == "" {
		o.HeaderBackground = defaultHeaderBackground
	}
	if o.HeaderForeground == "" {
		o.HeaderForeground = defaultHeaderForeground
	}
	if o.RowBackgroundA == "" {
		o.RowBackgroundA = defaultRowBackgroundA
	}
	if o.RowBackgroundB == "" {
		o.RowBackgroundB = defaultRowBackgroundB
	}
	return o
}

func (o Options) validate() error {
	for _, r := range o.Rules {
		if _, err := ParseRowSelector(string(r.Rows)); err != nil {
			return err
		}
	}
	return nil
}

func (o Options) tableStyle() string {
	if o.TableStyle == "" {
		return baseTableStyle
	}
	return baseTableStyle + ";" + o.TableStyle
}

// Write renders records as an HTML table and writes it to w. The only
// error conditions are an invalid rule selector and writer failures;
// irregular data (missing fields, rules matching nothing, no records at
// all) degrades gracefully instead of failing.
func Write(w io.Writer, opts Options, records ...*Record) error {
	if err := opts.validate(); err != nil {
		return err
	}
	enc := newEncoder(w, opts.withDefaults())
	for _, rec := range records {
		if err := enc.encode(rec); err != nil {
			return err
		}
	}
	return enc.close()
}

// Marshal renders records and returns the bytes.
func Marshal(opts Options, records ...*Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, opts, records...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render renders records and returns the table as a string.
func Render(opts Options, records ...*Record) (string, error) {
	data, err := Marshal(opts, records...)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
