// SPDX-License-Identifier: GPL-3.0-or-later

package dnslabel

// OwnedLabel is a copy of a [Label] stored inline.
//
// It is a plain value: copy it freely, store it in structs or use it as a
// map key without tying its lifetime to the buffer it was scanned from.
// Bytes past the label length are always zero, hence == is exact byte
// equality. Use [OwnedLabel.Key] for case-insensitive map keys.
//
// The zero value is the root label.
type OwnedLabel struct {
	n uint8
	b [MaxLen]byte
}

// NewOwnedLabel copies the given label. Since l is already valid, the
// bytes are not validated again.
func NewOwnedLabel(l Label) OwnedLabel {
	var o OwnedLabel
	o.n = uint8(copy(o.b[:], l.b))
	return o
}

// ParseOwnedLabel validates s using [TryFromString] and copies it.
func ParseOwnedLabel(s string) (OwnedLabel, error) {
	label, err := TryFromString(s)
	if err != nil {
		return OwnedLabel{}, err
	}
	return NewOwnedLabel(label), nil
}

// Owned returns an [OwnedLabel] copy of the label.
func (l Label) Owned() OwnedLabel {
	return NewOwnedLabel(l)
}

// Label returns a view over the stored bytes.
//
// The view aliases o, so it remains valid only as long as o does.
func (o *OwnedLabel) Label() Label {
	return FromBytesUnchecked(o.b[:o.n])
}

// MutLabel returns a writable view over the stored bytes.
func (o *OwnedLabel) MutLabel() MutLabel {
	return FromBytesUncheckedMut(o.b[:o.n])
}

// Len returns the length of the label in bytes.
func (o OwnedLabel) Len() int {
	return int(o.n)
}

// IsRoot returns whether this is the zero-length root label.
func (o OwnedLabel) IsRoot() bool {
	return o.n == 0
}

// String returns the label text.
func (o OwnedLabel) String() string {
	return string(o.b[:o.n])
}

// Equal is like [Label.Equal].
func (o OwnedLabel) Equal(other OwnedLabel) bool {
	return o.Label().Equal(other.Label())
}

// Compare is like [Label.Compare].
func (o OwnedLabel) Compare(other OwnedLabel) int {
	return o.Label().Compare(other.Label())
}

// Sum64 is like [Label.Sum64].
func (o OwnedLabel) Sum64() uint64 {
	return o.Label().Sum64()
}

// Key returns the lowercased copy of the label.
//
// Two labels have the same key iff they are [Label.Equal].
func (o OwnedLabel) Key() OwnedLabel {
	for idx := 0; idx < int(o.n); idx++ {
		o.b[idx] = lowerASCII(o.b[idx])
	}
	return o
}

// Array returns the inline buffer. Bytes past [OwnedLabel.Len] are zero.
func (o OwnedLabel) Array() [MaxLen]byte {
	return o.b
}
