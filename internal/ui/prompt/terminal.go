package prompt

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when a prompt is requested without a terminal.
var ErrNotInteractive = errors.New("interactive selection needs a terminal")

// Interactive reports whether stdin and stderr are both terminals. Prompts
// read keys from stdin and draw on stderr so stdout stays pipeable.
func Interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
