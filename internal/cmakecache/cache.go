// Package cmakecache reads CMakeCache.txt files and writes the subset of
// internal configure-check results as a script for cmake -C.
package cmakecache

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"
	"unicode"
)

// InternalType is the type tag of entries eligible for saving.
const InternalType = "INTERNAL"

// KeepPrefixes lists the name prefixes of the internal entries that are
// saved. Everything else in the cache is recomputed on configure.
var KeepPrefixes = []string{
	"CMAKE_HAVE_",
	"HAVE_",
	"SIZEOF_",
	"curl_cv_",
}

// Entry is one NAME:TYPE=VALUE line of a cache file.
type Entry struct {
	Name  string
	Type  string
	Value string
}

// Cache maps entry names to values.
type Cache map[string]string

// Names returns the entry names in ascending order.
func (c Cache) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ParseLine splits a cache line into an entry. It returns false for
// comments and for lines that are not of the form NAME:TYPE=VALUE.
// Leading whitespace and the trailing \n or \r\n are dropped; the name
// ends at the first ':' and the type at the first '=' after it.
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimLeftFunc(line, isSpace)
	line = strings.TrimSuffix(strings.TrimRight(line, "\n"), "\r")
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
		return Entry{}, false
	}
	name, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Entry{}, false
	}
	typ, value, ok := strings.Cut(rest, "=")
	if !ok {
		return Entry{}, false
	}
	return Entry{Name: name, Type: typ, Value: value}, true
}

// isSpace reports Unicode white space and the ASCII separators 0x1c-0x1f.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Keep reports whether e is an internal entry with a whitelisted name.
func Keep(e Entry) bool {
	if e.Type != InternalType {
		return false
	}
	for _, prefix := range KeepPrefixes {
		if strings.HasPrefix(e.Name, prefix) {
			return true
		}
	}
	return false
}

// Load reads a cache file and returns the kept entries. Lines end at
// \n, \r\n or a lone \r. Malformed lines are skipped. When a name
// repeats, the last value wins.
func Load(r io.Reader) (Cache, error) {
	c := make(Cache)
	br := bufio.NewReader(r)
	lines := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			for _, part := range strings.Split(line, "\r") {
				lines++
				if e, ok := ParseLine(part); ok && Keep(e) {
					c[e.Name] = e.Value
				}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read cache: %w", err)
		}
	}
	log.Printf("cmakecache: %d lines read, %d entries kept", lines, len(c))
	return c, nil
}
