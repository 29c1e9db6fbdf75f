// docwiki parses wiki-markup documentation comments out of source trees.
// Single binary, zero config — parse, index and search doc comments.
package main

import (
	"os"

	"github.com/corey/docwiki/cmd/docwiki/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
