package htable

import (
	"io"
	"iter"
)

// WriteIter renders records from an iterator, writing each row as it
// arrives. The input is consumed exactly once: columns are resolved from
// the first record and the table prologue is held back until then, so
// nothing beyond the current record is buffered. A sequence that yields
// no records produces the empty-state table.
func WriteIter(w io.Writer, opts Options, seq iter.Seq[*Record]) error {
	if err := opts.validate(); err != nil {
		return err
	}
	enc := newEncoder(w, opts.withDefaults())
	var encErr error
	seq(func(rec *Record) bool {
		if err := enc.encode(rec); err != nil {
			encErr = err
			return false
		}
		return true
	})
	if encErr != nil {
		return encErr
	}
	return enc.close()
}

// WriteChan renders records from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, opts Options, ch <-chan *Record) error {
	return WriteIter(w, opts, chanToIter(ch))
}

func chanToIter(ch <-chan *Record) iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for rec := range ch {
			if !yield(rec) {
				return
			}
		}
	}
}
