package types

import "io/fs"

// Classification decides how a template file reaches the output tree
type Classification int

const (
	// TextRewrite files go through token substitution before being written
	TextRewrite Classification = iota
	// VerbatimCopy files are copied byte for byte
	VerbatimCopy
	// Ignored files never reach the output tree
	Ignored
)

// String returns the string representation of the classification
func (c Classification) String() string {
	switch c {
	case TextRewrite:
		return "rewrite"
	case VerbatimCopy:
		return "copy"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// MarshalText lets classifications render by name in JSON output
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// FileRecord describes one file of the template tree. Records live for a
// single run only.
type FileRecord struct {
	// RelPath is slash separated and relative to the template root
	RelPath        string         `json:"path"`
	Classification Classification `json:"classification"`
	Mode           fs.FileMode    `json:"-"`
}
