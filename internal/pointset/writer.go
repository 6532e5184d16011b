package pointset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Writer wraps csv.Writer with fixed-precision point formatting.
// All numeric fields are written with exactly 3 decimal digits and no
// header row is emitted.
type Writer struct {
	w   *csv.Writer
	err error
	n   int
}

// NewWriter creates a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

// WritePoint writes one label,x,y,z record. The first write error is
// retained and reported by Flush; subsequent writes are no-ops once an
// error has occurred.
func (w *Writer) WritePoint(p Point) {
	if w.err != nil {
		return
	}
	rec := []string{
		p.Label,
		fmt.Sprintf("%.3f", p.X),
		fmt.Sprintf("%.3f", p.Y),
		fmt.Sprintf("%.3f", p.Z),
	}
	if err := w.w.Write(rec); err != nil {
		w.err = err
		return
	}
	w.n++
}

// Count returns the number of records written so far.
func (w *Writer) Count() int { return w.n }

// Flush writes buffered records to the underlying writer and returns the
// first error encountered, if any.
func (w *Writer) Flush() error {
	w.w.Flush()
	if w.err != nil {
		return w.err
	}
	return w.w.Error()
}
