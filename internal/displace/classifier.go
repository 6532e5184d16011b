// Package displace expands labelled 3D points into displaced point sets.
//
// Each input point is classified by the digits embedded in its label,
// routed through an inclusive-range lookup table to a category, and
// expanded with that category's displacement set: four small diagonal
// offsets plus three larger radial offsets at fixed angles. The whole
// transform is pure and deterministic; identical input and configuration
// always produce identical output.
package displace

import "strconv"

// Key is a classification key extracted from a point label.
// Valid keys are non-negative; NoKey marks a label with no usable digits.
type Key int64

// NoKey is returned by Classify when a label contains no digit characters,
// or when its digit string does not fit in an int64. Both route the point
// to the fallback category.
const NoKey Key = -1

// Valid reports whether k carries an actual classification key.
func (k Key) Valid() bool { return k >= 0 }

// Classify extracts the classification key from a label by concatenating
// its decimal digit characters in encounter order and parsing the result
// as a base-10 integer. Digits from separated groups are joined as if
// contiguous: "ABC015Z9" yields 159, not 15 or 9.
//
// Classify never fails. Labels without digits return NoKey, as do labels
// whose digit string overflows int64 (an overflowing key could not match
// any configured range, so it classifies exactly like a digit-free label).
func Classify(label string) Key {
	var digits []byte
	for i := 0; i < len(label); i++ {
		if c := label[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	if len(digits) == 0 {
		return NoKey
	}
	v, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return NoKey
	}
	return Key(v)
}
