package loader

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnsupported indicates the requested loader name is not registered.
var ErrUnsupported = errors.New("loader: unknown loader")

// Func parses the raw contents of one input file into a generic document.
type Func func(data []byte) (any, error)

// registry maps loader names to implementations. Populated at startup,
// never mutated at runtime.
var registry = map[string]Func{
	"yaml":         YAML,
	"json_lastrow": JSONLastRow,
	"json_rows":    JSONRows,
}

// Get returns the loader registered under name.
func Get(name string) (Func, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	return fn, nil
}

// Names returns all registered loader names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// YAML parses the whole file as a single YAML document.
func YAML(data []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loader: yaml: %w", err)
	}
	return doc, nil
}

// JSONLastRow parses only the final non-empty line as one JSON value.
func JSONLastRow(data []byte) (any, error) {
	var last []byte
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		if line := bytes.TrimSpace(scanner.Bytes()); len(line) > 0 {
			last = append(last[:0], line...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: json_lastrow: %w", err)
	}
	if len(last) == 0 {
		return nil, errors.New("loader: json_lastrow: file has no non-empty lines")
	}
	var doc any
	if err := json.Unmarshal(last, &doc); err != nil {
		return nil, fmt.Errorf("loader: json_lastrow: %w", err)
	}
	return doc, nil
}

// JSONRows parses every non-empty line as an independent JSON value and
// returns them as a sequence in line order.
func JSONRows(data []byte) (any, error) {
	var rows []any
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var row any
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("loader: json_rows: line %d: %w", lineNo, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: json_rows: %w", err)
	}
	return rows, nil
}
