// Package main provides the wyrm-layout binary, the region layout compiler
// for the Wyrm engine's entity definitions.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
