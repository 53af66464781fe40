// Command routetree inspects route declaration files: it checks them,
// lists their paths, replays navigation scripts against them and follows
// hot reloads while they are edited.
package main

import (
	"fmt"
	"os"

	"github.com/BrandonKowalski/routetree/pkg/routetree"
)

func main() {
	err := newRootCmd().Execute()
	routetree.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("error:"), err)
		os.Exit(1)
	}
}
