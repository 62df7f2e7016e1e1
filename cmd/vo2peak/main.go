// main is the entry point for the vo2peak CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spiroflow/vo2peak/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
