// Package main is the entry point for the libgen CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/cmd"
	oerrors "github.com/samuelho-dev/monorepo-library-generator-sub003/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already reported it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
