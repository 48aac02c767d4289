package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/nao1215/seocheck/internal/model"
)

const (
	// linkMarker starts a link line.
	linkMarker = ">"

	// headerSeparator splits a platform header into name and count.
	headerSeparator = ":"

	// codeFence is stripped from link lines so links pasted as
	// ```https://example.com``` are accepted.
	codeFence = "```"

	// utf8BOM is skipped when it precedes the first line.
	utf8BOM = "\ufeff"

	// maxLineSize bounds a single input line.
	maxLineSize = 1024 * 1024
)

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*model.PlatformList, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}
	defer f.Close()

	platforms, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}
	return platforms, nil
}

// Parse parses platform groups from r.
// Malformed lines are skipped; only read errors are returned.
func Parse(r io.Reader) (*model.PlatformList, error) {
	platforms := model.NewPlatformList()
	var current *model.PlatformGroup

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	first := true
	for scanner.Scan() {
		raw := scanner.Text()
		if first {
			raw = strings.TrimPrefix(raw, utf8BOM)
			first = false
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case isHeader(line):
			current = platforms.Start(headerName(line))
		case strings.HasPrefix(line, linkMarker) && current != nil:
			if link := cleanLink(line); link != "" {
				current.URLs = append(current.URLs, link)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return platforms, nil
}

// isHeader reports whether a trimmed line starts a new platform.
func isHeader(line string) bool {
	return strings.Contains(line, headerSeparator) && !strings.HasPrefix(line, linkMarker)
}

// headerName extracts the platform name from a header line.
func headerName(line string) string {
	name, _, _ := strings.Cut(line, headerSeparator)
	return strings.TrimSpace(name)
}

// cleanLink strips the marker, code fences and surrounding whitespace.
func cleanLink(line string) string {
	link := strings.TrimSpace(strings.TrimPrefix(line, linkMarker))
	link = strings.ReplaceAll(link, codeFence, "")
	return strings.TrimSpace(link)
}
