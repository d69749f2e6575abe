package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal. Non-TTY runs
// (CI, pipes) skip spinners and interactive prompts.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
