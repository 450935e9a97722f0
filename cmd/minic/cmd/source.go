package cmd

import (
	"fmt"
	"io"
	"os"
)

// sampleSource is the built-in demo program used when no source is given.
const sampleSource = `int main() {
    int x = 10;
    if (x > 5) {
        printf("x is greater than 5\n");
    }
    return 0;
}`

// stdinPiped reports whether stdin is a pipe rather than a terminal.
// It is a variable so tests can pin it.
var stdinPiped = func() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readSource resolves the source text for a command: piped stdin wins,
// then a file argument, then the built-in sample. The second return
// value names the origin for diagnostics and logging.
func readSource(args []string) (string, string, error) {
	if stdinPiped() {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}

	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("read source: %w", err)
		}
		return string(data), args[0], nil
	}

	return sampleSource, "sample", nil
}
