package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/YLivay/hexdump/hexdump"
	"github.com/YLivay/hexdump/utils"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run dumps the file named on the command line to stdout and returns the
// process exit code. Errors are reported on stderr, and nothing is written to
// stdout unless the whole dump succeeded.
func run(stdout, stderr io.Writer, args []string) int {
	cfg, shouldExit, err := parseArgs(args, stdout, stderr)
	if err != nil {
		reportError(stderr, err)
		return 1
	}
	if shouldExit {
		return 0
	}

	lines, err := hexdump.Dump(cfg)
	if err != nil {
		reportError(stderr, err)
		return 1
	}

	w := bufio.NewWriter(stdout)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		reportError(stderr, fmt.Errorf("failed to write output: %w", err))
		return 1
	}

	return 0
}

func reportError(stderr io.Writer, err error) {
	msg := "Error: " + err.Error()

	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		msg += "\n" + usageHint
	}

	lines := utils.Wrap(msg, terminalWidth(stderr))
	fmt.Fprintln(stderr, strings.Join(lines, "\n"))
}
