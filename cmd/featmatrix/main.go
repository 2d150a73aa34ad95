// featmatrix generates a CI build matrix from a Cargo manifest's
// optional feature flags.
package main

import (
	"os"

	"github.com/crateci/featmatrix/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
