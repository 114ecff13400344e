// SPDX-License-Identifier: GPL-3.0-or-later

package dnslabel

import (
	"strings"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

// ErrInvalidName indicates that a string is not a well-formed domain name.
var ErrInvalidName = errors.New("invalid domain name")

// Name is a domain name as a sequence of labels, leftmost label first.
//
// The empty Name is the root name.
type Name []OwnedLabel

// ParseName parses a domain name in presentation format, with or
// without the trailing dot. Every label must satisfy the [Label] grammar,
// so escape sequences are rejected.
func ParseName(s string) (Name, error) {
	if _, ok := dns.IsDomainName(s); !ok {
		return nil, errors.Wrapf(ErrInvalidName, "%q", s)
	}
	parts := dns.SplitDomainName(s)
	name := make(Name, 0, len(parts))
	for idx, part := range parts {
		label, _, err := TryScanBytes(stringBytes(part), false, true)
		if err != nil {
			return nil, errors.Wrapf(err, "label %d of %q", idx, s)
		}
		name = append(name, label.Owned())
	}
	return name, nil
}

// String returns the fully qualified name.
func (n Name) String() string {
	var sb strings.Builder
	for idx := range n {
		if idx > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(n[idx].String())
	}
	return dns.Fqdn(sb.String())
}

// Canonical returns the lowercase fully qualified name.
func (n Name) Canonical() string {
	return dns.CanonicalName(n.String())
}

// Equal returns whether the two names have the same labels ignoring case.
func (n Name) Equal(other Name) bool {
	if len(n) != len(other) {
		return false
	}
	for idx := range n {
		if !n[idx].Equal(other[idx]) {
			return false
		}
	}
	return true
}

// Compare orders names in canonical DNS order (RFC 4034 section 6.1):
// labels are compared starting from the rightmost one, and a name sorts
// before the names it is a suffix of.
func (n Name) Compare(other Name) int {
	ni, oi := len(n)-1, len(other)-1
	for ni >= 0 && oi >= 0 {
		if c := n[ni].Compare(other[oi]); c != 0 {
			return c
		}
		ni--
		oi--
	}
	switch {
	case ni < 0 && oi < 0:
		return 0
	case ni < 0:
		return -1
	default:
		return 1
	}
}

// HasSuffix returns whether n ends with the labels of suffix. Every
// name has the root name as a suffix.
func (n Name) HasSuffix(suffix Name) bool {
	offset := len(n) - len(suffix)
	if offset < 0 {
		return false
	}
	return n[offset:].Equal(suffix)
}
