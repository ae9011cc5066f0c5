// Command kith keeps track of when to check in with the people you care about.
package main

import (
	"os"

	"github.com/custodia-labs/kith-cli/internal/adapters/driving/cli"
)

func main() {
	cli.SetFactory(newServices)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
