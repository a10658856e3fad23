// Package main implements the command-line interface for clusterctl.
package main

import (
	"fmt"
	"os"

	"github.com/clusterops/clusterctl/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
