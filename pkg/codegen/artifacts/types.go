package artifacts

import "runtime"

// HashPlaceholder is replaced with the content hash of the artifact on write
const HashPlaceholder = "!codec_hash!"

// Mode selects how content reaches an existing file
type Mode int

const (
	// ModeOverwrite truncates the file
	ModeOverwrite Mode = iota
	// ModeAppend adds content after the current end of the file
	ModeAppend
)

func (m Mode) String() string {
	switch m {
	case ModeOverwrite:
		return "overwrite"
	case ModeAppend:
		return "append"
	default:
		return "unknown"
	}
}

// Policy is the line ending and whitespace normalization applied to an artifact
type Policy int

const (
	// PolicyPlatform converts LF to the writer's line separator
	PolicyPlatform Policy = iota
	// PolicyStrict keeps LF only, trims trailing spaces and tabs from every line
	// and ends the content with exactly one LF
	PolicyStrict
	// PolicyVerbatim writes LF line endings without conversion
	PolicyVerbatim
)

func (p Policy) String() string {
	return []string{"platform", "strict", "verbatim"}[p]
}

// Config configures a Writer
type Config struct {
	// LineSeparator replaces LF under PolicyPlatform
	LineSeparator string
	// Policies maps a file extension, including the dot, to its policy. Other
	// extensions use PolicyPlatform.
	Policies map[string]Policy
	// DirMode is used for created directories
	DirMode uint32
	// FileMode is used for created files
	FileMode uint32
}

// DefaultConfig returns the default writer configuration for the current platform
func DefaultConfig() *Config {
	sep := "\n"
	if runtime.GOOS == "windows" {
		sep = "\r\n"
	}
	return &Config{
		LineSeparator: sep,
		Policies: map[string]Policy{
			".cs": PolicyStrict,
			".md": PolicyVerbatim,
		},
		DirMode:  0755,
		FileMode: 0644,
	}
}

// WriteResult describes one completed write
type WriteResult struct {
	Path  string
	Mode  Mode
	Hash  string
	Bytes int
}
