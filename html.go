package htable

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// Reserved field prefix for the legacy attribute mechanism. Fields carrying
// the prefix are metadata carriers, never display columns.
const (
	attrPrefix    = "attr_"
	attrSeparator = ":"
)

// encoder emits one table incrementally. Columns are resolved from the
// first record, so the prologue (table tag, title row, header row) is held
// back until that record arrives. This keeps the streaming entry points
// single-pass with no buffering beyond the resolved column list.
type encoder struct {
	w       io.Writer
	opts    Options
	cols    []string
	started bool
	rows    int
}

func newEncoder(w io.Writer, opts Options) *encoder {
	return &encoder{w: w, opts: opts}
}

// encode writes one data row, emitting the prologue first when this is the
// first record seen.
func (e *encoder) encode(rec *Record) error {
	if !e.started {
		e.started = true
		e.cols = resolveColumns(rec.Fields(), e.opts.Columns)
		if err := e.prologue(len(e.cols), true); err != nil {
			return err
		}
	}
	if err := e.writeRow(rec); err != nil {
		return err
	}
	e.rows++
	return nil
}

// close finishes the table. When no record was ever seen it emits the
// prologue without a header row, followed by the empty-state row.
func (e *encoder) close() error {
	if !e.started {
		if err := e.prologue(1, false); err != nil {
			return err
		}
		_, err := fmt.Fprintf(e.w, "  <tr><td style=\"text-align:center;color:%s\">%s</td></tr>\n",
			emptyMessageColor, e.opts.EmptyMessage)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(e.w, "</table>")
	return err
}

func (e *encoder) prologue(colCount int, header bool) error {
	if colCount < 1 {
		colCount = 1
	}
	if _, err := fmt.Fprintf(e.w, "<table style=\"%s\">\n", e.opts.tableStyle()); err != nil {
		return err
	}
	if title := e.opts.Title; title != "" {
		_, err := fmt.Fprintf(e.w,
			"  <tr><td colspan=\"%d\" style=\"background-color:%s;color:%s;text-align:center;font-weight:bold\">%s</td></tr>\n",
			colCount, e.opts.TitleBackground, e.opts.TitleForeground, title)
		if err != nil {
			return err
		}
	}
	if !header {
		return nil
	}
	var sb strings.Builder
	sb.WriteString("  <tr>\n")
	for _, col := range e.cols {
		fmt.Fprintf(&sb,
			"    <td style=\"background-color:%s;color:%s;text-align:center;font-weight:bold\">%s</td>\n",
			e.opts.HeaderBackground, e.opts.HeaderForeground, col)
	}
	sb.WriteString("  </tr>\n")
	_, err := io.WriteString(e.w, sb.String())
	return err
}

func (e *encoder) writeRow(rec *Record) error {
	bg := e.opts.RowBackgroundA
	if e.rows%2 == 1 {
		bg = e.opts.RowBackgroundB
	}
	var attrs []cellAttr
	if e.opts.LegacyAttributes {
		attrs = legacyAttrs(rec)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "  <tr style=\"background-color:%s\">\n", bg)
	for _, col := range e.cols {
		e.writeCell(&sb, rec, col, attrs)
	}
	sb.WriteString("  </tr>\n")
	_, err := io.WriteString(e.w, sb.String())
	return err
}

func (e *encoder) writeCell(sb *strings.Builder, rec *Record, col string, attrs []cellAttr) {
	val, _ := rec.Get(col)

	aligned := false
	sb.WriteString("    <td")
	for _, a := range attrs {
		if a.column != "" && a.column != col {
			continue
		}
		fmt.Fprintf(sb, " %s=\"%s\"", a.name, a.value)
		if a.name == "align" {
			aligned = true
		}
	}

	var style strings.Builder
	for _, r := range e.opts.Rules {
		if !r.Rows.matches(e.rows) {
			continue
		}
		if r.Column != "" && r.Column != col {
			continue
		}
		style.WriteString(r.Property)
		style.WriteString(":")
		style.WriteString(r.Value)
		style.WriteString(";")
	}
	if strings.Contains(style.String(), "text-align") {
		aligned = true
	}
	if !aligned && !isTextual(val) {
		style.WriteString("text-align:center;")
	}
	if style.Len() > 0 {
		fmt.Fprintf(sb, " style=\"%s\"", style.String())
	}
	sb.WriteString(">")
	sb.WriteString(e.cellText(val))
	sb.WriteString("</td>\n")
}

func (e *encoder) cellText(v any) string {
	s := formatValue(v)
	if max := e.opts.MaxCellText; max > 0 && runewidth.StringWidth(s) > max {
		if max <= 3 {
			s = runewidth.Truncate(s, max, "")
		} else {
			s = runewidth.Truncate(s, max, "...")
		}
	}
	return s
}

// resolveColumns computes the display columns from the first record's field
// order. An explicit request filters to fields the record actually has and
// imposes its own order. Reserved-prefix fields never become columns.
func resolveColumns(natural, requested []string) []string {
	cols := natural
	if requested != nil {
		present := make(map[string]bool, len(natural))
		for _, f := range natural {
			present[f] = true
		}
		cols = make([]string, 0, len(requested))
		for _, f := range requested {
			if present[f] {
				cols = append(cols, f)
			}
		}
	}
	out := make([]string, 0, len(cols))
	for _, f := range cols {
		if !strings.HasPrefix(f, attrPrefix) {
			out = append(out, f)
		}
	}
	return out
}

// cellAttr is one HTML attribute extracted from a reserved-prefix field.
// An empty column applies the attribute to every cell of the row.
type cellAttr struct {
	name   string
	column string
	value  string
}

func legacyAttrs(rec *Record) []cellAttr {
	var attrs []cellAttr
	for _, f := range rec.Fields() {
		rest, ok := strings.CutPrefix(f, attrPrefix)
		if !ok {
			continue
		}
		val, _ := rec.Get(f)
		name, col, _ := strings.Cut(rest, attrSeparator)
		attrs = append(attrs, cellAttr{name: name, column: col, value: formatValue(val)})
	}
	return attrs
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// isTextual reports whether a value defaults to left alignment. Strings
// are textual; numbers, booleans, times, and nil are centered unless an
// attribute or rule already set an alignment.
func isTextual(v any) bool {
	_, ok := v.(string)
	return ok
}
