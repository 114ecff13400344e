// SPDX-License-Identifier: GPL-3.0-or-later

// Command dnslabel validates DNS hostname labels and names.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dnslabel: %s\n", err.Error())
		os.Exit(1)
	}
}
