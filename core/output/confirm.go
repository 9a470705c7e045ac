package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ConfirmOverwrite prompts before clobbering an existing output file. It
// returns true when path does not exist yet or the user accepts ("y", "Y" or
// just enter); any other answer declines.
func ConfirmOverwrite(path string, in io.Reader, out io.Writer) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return true, nil
	} else if err != nil {
		return false, fmt.Errorf("output: %w", err)
	}

	fmt.Fprintf(out, "Should I overwrite existing %s? (Y/n) ", path)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("output: %w", err)
	}
	switch strings.TrimSpace(line) {
	case "", "y", "Y":
		return true, nil
	}
	return false, nil
}
