// Command cellsortcheck checks the cell sort device model against the
// reference model, for one configuration or for a sweep.
package main

import (
	"github.com/tebeka/atexit"

	"github.com/sarchlab/cellsort/cellsortcheck/cmd"
)

func main() {
	cmd.Execute()
	atexit.Exit(0)
}
