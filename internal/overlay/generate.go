package overlay

import (
	"log"

	billy "github.com/go-git/go-billy/v5"

	"github.com/agentic-research/buildaux/api"
)

// Generate writes a case-insensitive overlay covering every root, in the
// order given. Records from different roots are concatenated without
// de-duplication. On a walk error the records already emitted stay
// written and End is not called.
func Generate(fsys billy.Filesystem, enc Encoder, roots ...string) error {
	if err := enc.Begin(); err != nil {
		return err
	}
	for _, root := range roots {
		n := 0
		err := Walk(fsys, root, func(d api.Directory) error {
			n++
			return enc.Directory(d)
		})
		if err != nil {
			return err
		}
		log.Printf("overlay: %s: %d directories", root, n)
	}
	return enc.End()
}
