// SPDX-License-Identifier: GPL-3.0-or-later

package dnslabel

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// Hash writes the lowercased label bytes to w one at a time, so that
// labels that are [Label.Equal] produce the same hash. A *maphash.Hash
// is a suitable w and never fails. Otherwise, Hash stops at and returns
// the first error returned by w.
func (l Label) Hash(w io.ByteWriter) error {
	for _, c := range l.b {
		if err := w.WriteByte(lowerASCII(c)); err != nil {
			return err
		}
	}
	return nil
}

// Sum64 returns the xxhash digest of the lowercased label bytes.
func (l Label) Sum64() uint64 {
	var buf [MaxLen]byte
	n := copy(buf[:], l.b)
	for idx := 0; idx < n; idx++ {
		buf[idx] = lowerASCII(buf[idx])
	}
	return xxhash.Sum64(buf[:n])
}
