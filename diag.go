// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !dnslabel_nodiag

package dnslabel

// diagnostics enables validating the input of the unchecked constructors.
//
// Build with the dnslabel_nodiag tag to skip these checks.
const diagnostics = true
