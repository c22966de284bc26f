// Command generate reads a GraphQL introspection result and produces Java
// client classes, one file per schema type.
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error("generation failed", "error", err)
		os.Exit(1)
	}
}
