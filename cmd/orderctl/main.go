// orderctl is a CLI tool for validating order sheets and reporting mock
// order-creation results
package main

import (
	"os"

	"github.com/finpilot/orderctl/cmd/orderctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
