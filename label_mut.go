// SPDX-License-Identifier: GPL-3.0-or-later

package dnslabel

import "github.com/bassosimone/runtimex"

// MutLabel is a validated DNS label borrowed from a writable buffer.
//
// It allows changing the case of the label in place, which never breaks
// the grammar. Obtain the read-only view using [MutLabel.Label].
type MutLabel struct {
	b []byte
}

// TryScanBytesMut is the [MutLabel] counterpart of [TryScanBytes].
func TryScanBytesMut(b []byte, allowRoot, requireFullLength bool) (MutLabel, []byte, error) {
	n, err := scan(b, allowRoot, requireFullLength)
	if err != nil {
		return MutLabel{}, nil, err
	}
	return MutLabel{b: b[:n:n]}, b[n:], nil
}

// ScanBytesMut is the [MutLabel] counterpart of [ScanBytes].
func ScanBytesMut(b []byte, allowRoot, requireFullLength bool) (MutLabel, []byte) {
	label, rest, err := TryScanBytesMut(b, allowRoot, requireFullLength)
	if err != nil {
		panic(err)
	}
	return label, rest
}

// ScanBytesUncheckedMut is the [MutLabel] counterpart of [ScanBytesUnchecked].
func ScanBytesUncheckedMut(b []byte, allowRoot, requireFullLength bool) (MutLabel, []byte) {
	if diagnostics {
		return ScanBytesMut(b, allowRoot, requireFullLength)
	}
	n := min(len(b), MaxLen)
	return MutLabel{b: b[:n:n]}, b[n:]
}

// TryFromBytesMut is the [MutLabel] counterpart of [TryFromBytes].
func TryFromBytesMut(b []byte) (MutLabel, error) {
	label, _, err := TryScanBytesMut(b, true, true)
	return label, err
}

// FromBytesMut is the [MutLabel] counterpart of [FromBytes].
func FromBytesMut(b []byte) MutLabel {
	return runtimex.PanicOnError1(TryFromBytesMut(b))
}

// FromBytesUncheckedMut is the [MutLabel] counterpart of [FromBytesUnchecked].
func FromBytesUncheckedMut(b []byte) MutLabel {
	if diagnostics {
		return FromBytesMut(b)
	}
	return MutLabel{b: b[:len(b):len(b)]}
}

// Label returns the read-only view of the same bytes.
func (m MutLabel) Label() Label {
	return Label{b: m.b}
}

// Len returns the length of the label in bytes.
func (m MutLabel) Len() int {
	return len(m.b)
}

// IsRoot returns whether this is the zero-length root label.
func (m MutLabel) IsRoot() bool {
	return len(m.b) == 0
}

// String returns a copy of the label text.
func (m MutLabel) String() string {
	return string(m.b)
}

// ToLower converts the label to ASCII lowercase in place.
func (m MutLabel) ToLower() {
	for idx, c := range m.b {
		m.b[idx] = lowerASCII(c)
	}
}

// ToUpper converts the label to ASCII uppercase in place.
func (m MutLabel) ToUpper() {
	for idx, c := range m.b {
		m.b[idx] = upperASCII(c)
	}
}
