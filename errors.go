// SPDX-License-Identifier: GPL-3.0-or-later

package dnslabel

// LabelError is the error returned when scanning a [Label] fails.
//
// The set of values is closed: [ErrStrayHyphen], [ErrLengthMismatch]
// and [ErrFoundRoot]. Values are comparable and work with [errors.Is].
type LabelError uint8

const (
	// ErrStrayHyphen means the label starts or ends with a hyphen, or
	// contains a byte that is not an ASCII letter, digit or hyphen.
	ErrStrayHyphen LabelError = iota + 1

	// ErrLengthMismatch means the scanned label is shorter than its source.
	ErrLengthMismatch

	// ErrFoundRoot means we scanned the root label but the caller did not allow it.
	ErrFoundRoot
)

// Message returns the fixed error message.
func (e LabelError) Message() string {
	switch e {
	case ErrStrayHyphen:
		return "labels cannot have a hyphen at their start or end"
	case ErrLengthMismatch:
		return "length of the scanned label differs from its source"
	case ErrFoundRoot:
		return "scanned the root label unexpectedly"
	default:
		return "unknown label error"
	}
}

// Error implements error.
func (e LabelError) Error() string {
	return e.Message()
}
