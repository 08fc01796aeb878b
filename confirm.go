package vibeeq

import (
	"fmt"
	"os"
	"runtime"

	"github.com/Songmu/prompter"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// generateDiff creates a human-readable diff between the installed preset
// and the one about to be written
func generateDiff(oldJSON, newJSON string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldJSON, newJSON, false)
	return dmp.DiffPrettyText(diffs)
}

// promptYN asks on the controlling terminal. When stdin is redirected the
// terminal is reopened so the question can still be answered.
func promptYN(question string) bool {
	if !isTerminal(os.Stdin) {
		// Use /dev/tty on Unix-like systems, CON on Windows
		consoleDevice := "/dev/tty"
		if runtime.GOOS == "windows" {
			consoleDevice = "CON"
		}
		tty, err := os.OpenFile(consoleDevice, os.O_RDWR, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", consoleDevice, err)
			return false
		}
		defer tty.Close()

		oldStdin := os.Stdin
		os.Stdin = tty
		defer func() { os.Stdin = oldStdin }()
	}
	return prompter.YN(question, true)
}
