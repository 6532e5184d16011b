package displace

import "github.com/metrolab/displace/internal/pointset"

// Expanded is one emitted point, tagged with how it was produced. The tags
// exist for downstream sinks (colouring originals by category, skipping
// originals in file output); they never alter the label or coordinates.
type Expanded struct {
	pointset.Point
	Key      Key  // classification key of the source point
	Category int  // index into the table's category list
	Derived  bool // false for the verbatim original, true for displaced points
}

// Engine applies the displacement catalog to input points. It is a pure,
// single-threaded transform: no I/O, no locks, no shared mutable state.
// The table is read-only after construction, so one engine may be shared
// across goroutines if a caller chooses to batch files.
type Engine struct {
	table Table
}

// NewEngine builds an engine from cfg, constructing the displacement
// catalog once up front.
func NewEngine(cfg Config) *Engine {
	return &Engine{table: cfg.Table()}
}

// Table exposes the resolved category table for sinks that need category
// names.
func (e *Engine) Table() Table { return e.table }

// ExpandPoint expands a single point. When keepOriginal is true the
// verbatim original is emitted first, followed by one derived point per
// displacement entry in set order. Coordinate arithmetic is plain IEEE
// double addition; rounding is left to the output writer.
func (e *Engine) ExpandPoint(p pointset.Point, keepOriginal bool) []Expanded {
	key := Classify(p.Label)
	cat := e.table.Resolve(key)
	set := e.table.Categories[cat].Set

	out := make([]Expanded, 0, len(set)+1)
	if keepOriginal {
		out = append(out, Expanded{Point: p, Key: key, Category: cat})
	}
	for _, entry := range set {
		out = append(out, Expanded{
			Point:    p.Translate(entry.Suffix, entry.DX, entry.DY, entry.DZ),
			Key:      key,
			Category: cat,
			Derived:  true,
		})
	}
	return out
}

// Expand expands every point in input order. Derived points for a source
// point immediately follow its (optional) original; no reordering or
// deduplication is performed, so duplicate input labels produce duplicate
// prefixed labels in the output, which is expected. Empty input yields
// empty output.
func (e *Engine) Expand(points []pointset.Point, keepOriginal bool) []Expanded {
	var out []Expanded
	for _, p := range points {
		out = append(out, e.ExpandPoint(p, keepOriginal)...)
	}
	return out
}
