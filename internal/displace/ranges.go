package displace

// Range is an inclusive integer interval of classification keys.
// Bounds are not validated: an inverted range (Lo > Hi) matches nothing
// and falls through to lower-priority categories or the fallback.
type Range struct {
	Lo int64
	Hi int64
}

// Contains reports whether k lies within the range, bounds inclusive.
func (r Range) Contains(k Key) bool {
	return int64(k) >= r.Lo && int64(k) <= r.Hi
}

// Category is a named partition of key space with its own displacement
// geometry.
type Category struct {
	Name   string
	Ranges []Range
	Set    Set
}

// contains reports whether any of the category's ranges holds k.
func (c Category) contains(k Key) bool {
	for _, r := range c.Ranges {
		if r.Contains(k) {
			return true
		}
	}
	return false
}

// Table is an ordered category list with a designated fallback.
// Declaration order is priority order: when ranges overlap, the
// first-declared category wins. Tables are built once at startup and
// never modified, so they are safe to share across goroutines.
type Table struct {
	Categories []Category
	Fallback   int // index into Categories
}

// Resolve maps a classification key to a category index.
//
// NoKey resolves to the fallback immediately, without consulting any
// ranges. A valid key is tested against categories in declaration order
// and the first match wins; a key matching no category also resolves to
// the fallback. The fallback is a real category with its own displacement
// set, not a "no displacement" marker.
func (t *Table) Resolve(k Key) int {
	if !k.Valid() {
		return t.Fallback
	}
	for i, c := range t.Categories {
		if c.contains(k) {
			return i
		}
	}
	return t.Fallback
}
