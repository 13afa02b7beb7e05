// Package watchlist reads the set of items the monitor loops over.
// Entries are item names or slugs separated by commas or newlines; names
// may contain spaces and are normalized to slugs.
package watchlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wfm-monitor/internal/orderbook"
)

const defaultFileName = "watchlist.txt"

// Parse splits raw on commas, semicolons and newlines, normalizes each
// entry to a slug, and drops duplicates while preserving first-seen order.
func Parse(raw string) []orderbook.Slug {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})

	out := make([]orderbook.Slug, 0, len(parts))
	seen := make(map[orderbook.Slug]struct{}, len(parts))
	for _, p := range parts {
		slug, err := orderbook.Normalize(p)
		if err != nil {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, slug)
	}
	return out
}

// ReadFile loads a watch list file. Blank lines and lines starting with
// '#' or '//' are skipped; '#' also starts a trailing comment.
func ReadFile(path string) ([]orderbook.Slug, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var b strings.Builder
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return Parse(b.String()), nil
}

// DefaultFileIfPresent looks for watchlist.txt in the working directory,
// then upward until a go.mod (module root), then next to the executable.
// Returns "" when none is found.
func DefaultFileIfPresent() string {
	if isRegularFile(defaultFileName) {
		return defaultFileName
	}

	cwd, err := os.Getwd()
	if err == nil && cwd != "" {
		if p := findUpwardUntilGoMod(cwd, defaultFileName); p != "" {
			return p
		}
	}

	exe, err := os.Executable()
	if err == nil && strings.TrimSpace(exe) != "" {
		if p := filepath.Join(filepath.Dir(exe), defaultFileName); isRegularFile(p) {
			return p
		}
	}

	return ""
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsRegular()
}

func findUpwardUntilGoMod(startDir, fileName string) string {
	dir := filepath.Clean(startDir)
	for {
		if strings.TrimSpace(dir) == "" || dir == "." {
			return ""
		}

		p := filepath.Join(dir, fileName)
		if isRegularFile(p) {
			return p
		}

		if isRegularFile(filepath.Join(dir, "go.mod")) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
