// Package main implements the Kestrel compiler entry point.
package main

import (
	"fmt"
	"os"
)

// Version information
const Version = "0.1.0-dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "kestrelc: %v\n", err)
		os.Exit(1)
	}
}
