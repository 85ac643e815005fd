package cmakecache

import (
	"fmt"
	"io"
	"strings"
)

// Escape prefixes every double quote in value with a backslash so it can
// sit inside a quoted CMake argument. Backslashes are left alone.
func Escape(value string) string {
	return strings.ReplaceAll(value, `"`, `\"`)
}

// WriteListing writes NAME=VALUE lines in name order. Values are not
// escaped.
func WriteListing(w io.Writer, c Cache) error {
	for _, name := range c.Names() {
		if _, err := fmt.Fprintf(w, "%s=%s\n", name, c[name]); err != nil {
			return err
		}
	}
	return nil
}

// WriteScript writes one set(NAME "VALUE" CACHE INTERNAL "") command per
// entry in name order.
func WriteScript(w io.Writer, c Cache) error {
	for _, name := range c.Names() {
		if _, err := fmt.Fprintf(w, "set(%s \"%s\" CACHE %s \"\")\n", name, Escape(c[name]), InternalType); err != nil {
			return err
		}
	}
	return nil
}
