package api

// Overlay is the root of a Clang virtual filesystem overlay document.
// It describes a virtual directory tree whose files redirect to real
// files on disk.
type Overlay struct {
	// Version of the overlay format. Always 0.
	Version int `json:"version" yaml:"version"`
	// CaseSensitive controls whether lookups in the overlay are case-sensitive.
	CaseSensitive bool `json:"case-sensitive" yaml:"case-sensitive"`
	// Roots are the top-level directory entries.
	Roots []Directory `json:"roots" yaml:"roots"`
}

// Directory is a virtual directory with its direct file children.
type Directory struct {
	// Name is the absolute path of the directory.
	Name string `json:"name" yaml:"name"`
	// Type is always TypeDirectory.
	Type string `json:"type" yaml:"type"`
	// Contents lists the files directly inside the directory.
	Contents []File `json:"contents" yaml:"contents"`
}

// File is a virtual file mapped to a real file.
type File struct {
	// Name is the base name of the file.
	Name string `json:"name" yaml:"name"`
	// Type is always TypeFile.
	Type string `json:"type" yaml:"type"`
	// ExternalContents is the absolute path of the real file.
	ExternalContents string `json:"external-contents" yaml:"external-contents"`
}

// Entry type tags.
const (
	TypeDirectory = "directory"
	TypeFile      = "file"
)
