// SPDX-License-Identifier: GPL-3.0-or-later

package dnslabel

import (
	"cmp"
	"strconv"
	"unsafe"

	"github.com/bassosimone/runtimex"
)

// Label is a validated DNS label borrowed from an existing buffer.
//
// A Label never references bytes violating the label grammar: between 1
// and [MaxLen] ASCII letters, digits or hyphens, not starting or ending
// with a hyphen. The zero value is the zero-length root label.
//
// Construct using [TryScanBytes], [TryFromBytes], [TryFromString] or
// one of their panicking or unchecked variants. Use [MutLabel] when you
// need to change the case of the label in place.
type Label struct {
	b []byte
}

// TryScanBytes scans a label from the start of b and returns the label
// and the remaining bytes of b.
//
// The allowRoot flag allows scanning the zero-length root label. The
// requireFullLength flag requires the label to cover all of b.
func TryScanBytes(b []byte, allowRoot, requireFullLength bool) (Label, []byte, error) {
	n, err := scan(b, allowRoot, requireFullLength)
	if err != nil {
		return Label{}, nil, err
	}
	return Label{b: b[:n:n]}, b[n:], nil
}

// ScanBytes is like [TryScanBytes] but panics on error.
func ScanBytes(b []byte, allowRoot, requireFullLength bool) (Label, []byte) {
	label, rest, err := TryScanBytes(b, allowRoot, requireFullLength)
	if err != nil {
		panic(err)
	}
	return label, rest
}

// ScanBytesUnchecked is like [ScanBytes] but assumes that the caller has
// already established that b starts with a label valid for the given flags.
//
// The input is validated anyway unless built with the dnslabel_nodiag tag,
// in which case passing invalid input yields an invalid [Label].
func ScanBytesUnchecked(b []byte, allowRoot, requireFullLength bool) (Label, []byte) {
	if diagnostics {
		return ScanBytes(b, allowRoot, requireFullLength)
	}
	n := min(len(b), MaxLen)
	return Label{b: b[:n:n]}, b[n:]
}

// TryFromBytes validates that b is exactly one label.
//
// This is equivalent to [TryScanBytes] with allowRoot and requireFullLength
// both set, hence an empty b is the root label.
func TryFromBytes(b []byte) (Label, error) {
	label, _, err := TryScanBytes(b, true, true)
	return label, err
}

// FromBytes is like [TryFromBytes] but panics on error.
func FromBytes(b []byte) Label {
	return runtimex.PanicOnError1(TryFromBytes(b))
}

// FromBytesUnchecked is like [FromBytes] but assumes b is a valid label.
//
// The input is validated anyway unless built with the dnslabel_nodiag tag.
func FromBytesUnchecked(b []byte) Label {
	if diagnostics {
		return FromBytes(b)
	}
	return Label{b: b[:len(b):len(b)]}
}

// TryFromString is like [TryFromBytes] but borrows the bytes of s.
//
// No copy is performed: the returned label references the memory of s.
func TryFromString(s string) (Label, error) {
	return TryFromBytes(stringBytes(s))
}

// FromString is like [TryFromString] but panics on error.
func FromString(s string) Label {
	return runtimex.PanicOnError1(TryFromString(s))
}

// stringBytes returns the bytes of s without copying.
//
// The returned slice MUST NOT be modified.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Len returns the length of the label in bytes.
func (l Label) Len() int {
	return len(l.b)
}

// IsRoot returns whether this is the zero-length root label.
func (l Label) IsRoot() bool {
	return len(l.b) == 0
}

// Bytes returns the underlying bytes without copying.
//
// The caller MUST NOT modify the returned slice. Use [MutLabel] to
// change the case of a label in place.
func (l Label) Bytes() []byte {
	return l.b
}

// String returns a copy of the label text.
func (l Label) String() string {
	return string(l.b)
}

// UnsafeString returns the label text without copying.
//
// The returned string aliases the underlying buffer, so it changes
// if the buffer is later modified, e.g., by [MutLabel.ToLower].
func (l Label) UnsafeString() string {
	return unsafe.String(unsafe.SliceData(l.b), len(l.b))
}

// GoString implements fmt.GoStringer. Unlike [Label.String], the
// text is quoted so that %#v output reads as a Go string literal.
func (l Label) GoString() string {
	return strconv.Quote(l.UnsafeString())
}

// Equal returns whether the two labels are equal ignoring ASCII case.
func (l Label) Equal(other Label) bool {
	if len(l.b) != len(other.b) {
		return false
	}
	for idx := range l.b {
		if lowerASCII(l.b[idx]) != lowerASCII(other.b[idx]) {
			return false
		}
	}
	return true
}

// Compare compares the lowercased bytes of the two labels lexicographically
// and returns -1, 0 or +1. A label sorts before any longer label of which it
// is a prefix.
func (l Label) Compare(other Label) int {
	n := min(len(l.b), len(other.b))
	for idx := 0; idx < n; idx++ {
		if c := cmp.Compare(lowerASCII(l.b[idx]), lowerASCII(other.b[idx])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(l.b), len(other.b))
}

// Less returns whether l sorts before other according to [Label.Compare].
func (l Label) Less(other Label) bool {
	return l.Compare(other) < 0
}
