package sensor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ParseLine decodes one stream line of the form "CODE;v1;v2;...".
func ParseLine(line string) (Package, error) {
	fields := strings.Split(line, ";")
	if len(fields) < 2 {
		return Package{}, fmt.Errorf("malformed package %q: want CODE;v1;...", line)
	}
	code := strings.TrimSpace(fields[0])
	if code == "" {
		return Package{}, fmt.Errorf("malformed package %q: empty workout code", line)
	}

	values := make([]float64, 0, len(fields)-1)
	for _, field := range fields[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Package{}, fmt.Errorf("parsing value %q in package %q: %w", field, line, err)
		}
		values = append(values, v)
	}

	return Package{ID: uuid.NewString(), Code: code, Values: values}, nil
}

// ReadStream reads newline-delimited sensor packages. Blank lines and lines
// starting with # are skipped.
func ReadStream(r io.Reader) ([]Package, error) {
	scanner := bufio.NewScanner(r)
	var packages []Package
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pkg, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		packages = append(packages, pkg)
	}

	return packages, scanner.Err()
}
