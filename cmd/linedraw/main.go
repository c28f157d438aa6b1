// Command linedraw draws ASCII lines whose styles are selected by checked
// mode combinations, and demonstrates the combinations that are rejected.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
