// Package main provides the market CLI, the command surface of the farm
// marketplace. Commands validate input shape and issue CRUD statements
// against the storage backend; every integrity rule lives in the schema.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the CLI exit code: user errors (bad input,
// integrity violations, missing rows) exit 1, system errors exit 2.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrConstraint),
		errors.Is(err, types.ErrReferential),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrInvalidID),
		errors.Is(err, types.ErrInvalidData),
		errors.Is(err, types.ErrTableNotFound):
		return exitUserError
	default:
		return exitSysError
	}
}
