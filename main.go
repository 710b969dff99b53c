// Binary monthly-file-diff scans date-parameterized folders and reports how
// files evolve across periods.
package main

import (
	"fmt"
	"os"

	"github.com/tyaso777/monthly-file-diff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
