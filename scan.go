// SPDX-License-Identifier: GPL-3.0-or-later

package dnslabel

// MaxLen is the maximum length in bytes of a DNS label.
const MaxLen = 63

// scan returns how many bytes at the start of b form a valid label.
//
// It is always safe to wrap b[:n] into a [Label] when err is nil.
//
// The allowRoot flag controls whether a zero-length result is acceptable
// and requireFullLength controls whether the result must cover all of b.
func scan(b []byte, allowRoot, requireFullLength bool) (int, error) {
	n, ok := scanWindow(b)
	if !ok {
		return 0, ErrStrayHyphen
	}
	if n == 0 && !allowRoot {
		return 0, ErrFoundRoot
	}
	if requireFullLength && n != len(b) {
		return 0, ErrLengthMismatch
	}
	return n, nil
}

// scanWindow classifies the first min(len(b), MaxLen) bytes of b.
//
// A single byte outside [A-Za-z0-9-] anywhere in the window rejects the
// whole window: we never accept a partial prefix. A nonempty window must
// also neither start nor end with a hyphen.
func scanWindow(b []byte) (int, bool) {
	window := min(len(b), MaxLen)
	for idx := 0; idx < window; idx++ {
		if !isLabelByte(b[idx]) {
			return 0, false
		}
	}
	if window > 0 && (b[0] == '-' || b[window-1] == '-') {
		return 0, false
	}
	return window, true
}

func isLabelByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z':
		return true
	case 'A' <= c && c <= 'Z':
		return true
	case '0' <= c && c <= '9':
		return true
	default:
		return c == '-'
	}
}

// lowerASCII is the ASCII-only lowercase mapping of a single byte.
func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		c += 0x20
	}
	return c
}

func upperASCII(c byte) byte {
	if 'a' <= c && c <= 'z' {
		c -= 0x20
	}
	return c
}
