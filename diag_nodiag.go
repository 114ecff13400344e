// SPDX-License-Identifier: GPL-3.0-or-later

//go:build dnslabel_nodiag

package dnslabel

const diagnostics = false
