package vibeeq

import (
	"os"

	"github.com/mattn/go-isatty"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Interactive reports whether both stdin and stdout are terminals, which is
// what the pickers need
func Interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}
