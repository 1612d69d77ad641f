// Command seedgrid reads seed coordinates ("<x>, <y>" per line) and prints the
// largest bounded Manhattan region and the size of the near-all region.
package main

import (
	"os"

	"github.com/katalvlaran/seedgrid/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Log.WithError(err).Error("seedgrid failed")
		os.Exit(1)
	}
}
