package overlay

import (
	"path"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agentic-research/buildaux/api"
)

// genTree generates file paths under /root spread across a fixed set of
// nested directories. File names carry an f_ prefix so they never collide
// with directory names.
func genTree() gopter.Gen {
	return gen.SliceOf(gopter.CombineGens(
		gen.OneConstOf("", "a", "a/b", "a/b/c", "d", "e/f"),
		gen.Identifier(),
	).Map(func(vals []interface{}) string {
		return path.Join("/root", vals[0].(string), "f_"+vals[1].(string))
	}))
}

// TestGenerate_Property checks that every record lists exactly the direct
// files of its directory and that file-less directories never appear.
func TestGenerate_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("contents match direct files", prop.ForAll(
		func(files []string) bool {
			fsys := memfs.New()
			if err := fsys.MkdirAll("/root", 0o755); err != nil {
				return false
			}
			direct := map[string]map[string]bool{}
			for _, f := range files {
				if err := util.WriteFile(fsys, f, nil, 0o644); err != nil {
					return false
				}
				dir := path.Dir(f)
				if direct[dir] == nil {
					direct[dir] = map[string]bool{}
				}
				direct[dir][f] = true
			}

			seen := map[string]bool{}
			err := Walk(fsys, "/root", func(d api.Directory) error {
				seen[d.Name] = true
				want := direct[d.Name]
				if len(d.Contents) == 0 || len(d.Contents) != len(want) {
					t.Logf("%s: got %d files, want %d", d.Name, len(d.Contents), len(want))
					seen[d.Name] = false
				}
				for _, c := range d.Contents {
					if !want[c.ExternalContents] || path.Join(d.Name, c.Name) != c.ExternalContents {
						seen[d.Name] = false
					}
				}
				return nil
			})
			if err != nil || len(seen) != len(direct) {
				return false
			}
			for dir, ok := range seen {
				if !ok || direct[dir] == nil {
					return false
				}
			}
			return true
		},
		genTree(),
	))

	properties.Property("output is deterministic", prop.ForAll(
		func(files []string) bool {
			fsys := memfs.New()
			if err := fsys.MkdirAll("/root", 0o755); err != nil {
				return false
			}
			for _, f := range files {
				if err := util.WriteFile(fsys, f, nil, 0o644); err != nil {
					return false
				}
			}
			render := func() string {
				var enc recorder
				if err := Generate(fsys, &enc, "/root"); err != nil {
					return "error"
				}
				return enc.String()
			}
			return render() == render()
		},
		genTree(),
	))

	properties.TestingRun(t)
}

// recorder is an Encoder that renders records into a flat string.
type recorder struct {
	out []byte
}

func (r *recorder) Begin() error {
	r.out = append(r.out, "begin\n"...)
	return nil
}

func (r *recorder) Directory(d api.Directory) error {
	r.out = append(r.out, d.Name...)
	for _, f := range d.Contents {
		r.out = append(r.out, ' ')
		r.out = append(r.out, f.Name...)
	}
	r.out = append(r.out, '\n')
	return nil
}

func (r *recorder) End() error {
	r.out = append(r.out, "end\n"...)
	return nil
}

func (r *recorder) String() string { return string(r.out) }
