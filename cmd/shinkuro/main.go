// Command shinkuro serves a folder of markdown prompt templates over the
// Model Context Protocol on stdio.
package main

// file: cmd/shinkuro/main.go

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
