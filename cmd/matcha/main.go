// Package main is the entry point for the matcha CLI.
package main

import (
	"fmt"
	"os"

	"github.com/strickvl/matcha/internal/cmd"
	merrors "github.com/strickvl/matcha/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(merrors.ExitCodeFromError(err))
	}
}
