// Command a11ycatalog lists, renders, explores, audits and serves the
// accessibility example catalog.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
