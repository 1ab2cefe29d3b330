// Command gridpath runs the pathkit searches over text grids read from
// files: maze route costs, region fence prices and trail counts.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "gridpath: %v\n", err)
		os.Exit(1)
	}
}
