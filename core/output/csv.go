package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"log-merger/core/merge"
)

// Write serializes a merge result as CSV. encoding/csv cannot force quotes
// onto non-numeric fields only, so rows are assembled by hand.
func Write(w io.Writer, res *merge.Result) error {
	bw := bufio.NewWriter(w)

	if res.Header != nil {
		fields := make([]string, len(res.Header))
		for i, name := range res.Header {
			fields[i] = formatField(name)
		}
		if _, err := bw.WriteString(strings.Join(fields, ",") + "\r\n"); err != nil {
			return err
		}
	}

	for _, row := range res.Rows {
		fields := make([]string, 0, 1+len(row.Stats))
		fields = append(fields, formatField(row.Key))
		for _, stat := range row.Stats {
			fields = append(fields, strconv.FormatFloat(stat, 'g', -1, 64))
		}
		if _, err := bw.WriteString(strings.Join(fields, ",") + "\r\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile writes the result to path, truncating any existing file.
func WriteFile(path string, res *merge.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err := Write(f, res); err != nil {
		f.Close()
		return fmt.Errorf("output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// formatField renders one CSV field. Numbers stay bare; anything that does
// not parse as a numeric literal is double-quoted.
func formatField(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int:
		return strconv.Itoa(x)
	case string:
		if _, err := strconv.ParseFloat(x, 64); err == nil {
			return x
		}
		return quote(x)
	default:
		return quote(fmt.Sprintf("%v", x))
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
