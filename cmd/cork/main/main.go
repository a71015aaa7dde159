package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/cork/cmd/cork"
	"github.com/arthur-debert/cork/pkg/style"
	"github.com/arthur-debert/cork/pkg/terminal"
)

func main() {
	rootCmd := cork.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		colorizer := style.For(terminal.SupportsANSI(os.Stderr, terminal.ANSIAuto))
		fmt.Fprintln(os.Stderr, colorizer.Colorize(fmt.Sprintf("Error: %v", err), style.Red))
		os.Exit(1)
	}
}
