// internal/allowlist/loader.go
package allowlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load reads a newline-separated list of domain suffixes.
// Surrounding whitespace is trimmed; blank lines and '#' comments are skipped.
// File order is preserved.
func Load(path string) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("allow-list: %w", err)
	}
	defer fh.Close()

	list, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("allow-list %s: %w", path, err)
	}
	return list, nil
}

// Parse is Load for an already open reader.
func Parse(r io.Reader) ([]string, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		list = append(list, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
