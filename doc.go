// SPDX-License-Identifier: GPL-3.0-or-later

// Package dnslabel validates and represents DNS hostname labels.
//
// A label is the part of a domain name between dots. This package only
// accepts hostname labels: between 1 and [MaxLen] ASCII letters, digits
// or hyphens, not starting or ending with a hyphen, plus the zero-length
// root label when the caller allows it.
//
// [Label] is a validated view borrowed from an existing buffer and
// [MutLabel] is its writable counterpart. [OwnedLabel] is a fixed-size
// inline copy usable as a value. None of them allocates.
//
// Constructors come in three flavours. The Try functions (e.g.,
// [TryFromBytes]) return a [LabelError]. The plain functions (e.g.,
// [FromBytes]) panic. The Unchecked functions (e.g., [FromBytesUnchecked])
// trust the caller; they still validate and panic unless the package is
// built with the dnslabel_nodiag tag.
//
// Comparison, ordering and hashing ignore ASCII case.
//
// [Name], [LabelSet], [Query] and [ValidateResponseForQuery] build on
// labels, using [github.com/miekg/dns] for domain names and messages.
package dnslabel
