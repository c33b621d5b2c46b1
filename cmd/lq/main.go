// Command lq runs LINQ-style queries over JSON and YAML arrays.
package main

import (
	"fmt"
	"os"

	"linq/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lq: %v\n", err)
		os.Exit(1)
	}
}
