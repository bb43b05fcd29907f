// main is the entry point for the rubric CLI.
package main

import (
	"fmt"
	"os"

	"github.com/quartzsec/rubric/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
