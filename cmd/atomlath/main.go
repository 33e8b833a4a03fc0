// SPDX-License-Identifier: MIT

// Command atomlath analyses atomic structures: neighbor lists, bond order,
// common neighbor analysis, clusters and pair statistics.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
