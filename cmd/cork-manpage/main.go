package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/cork/cmd/cork"
	"github.com/arthur-debert/cork/internal/version"
)

func main() {
	rootCmd := cork.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CORK",
		Section: "1",
		Source:  "cork " + version.Version,
		Manual:  "cork manual",
	}

	// With a directory argument, one page per command is written there
	var err error
	if len(os.Args) > 1 {
		err = doc.GenManTree(rootCmd, header, os.Args[1])
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
