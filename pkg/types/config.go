package types

import "fmt"

// DefaultMaxLevel is the deepest heading level treated as a section boundary
// when no override is given.
const DefaultMaxLevel = 6

// UnmatchedPolicy controls what happens to source sections whose heading does
// not appear in the target outline.
type UnmatchedPolicy string

const (
	// UnmatchedAppend keeps unmatched sections, placed after the
	// outline-ordered sections in source document order.
	UnmatchedAppend UnmatchedPolicy = "append"

	// UnmatchedDelete drops unmatched sections from the output entirely.
	UnmatchedDelete UnmatchedPolicy = "delete"

	// UnmatchedWarn keeps unmatched sections like UnmatchedAppend and warns
	// about each run that relies on it.
	UnmatchedWarn UnmatchedPolicy = "warn"
)

// ParseUnmatchedPolicy validates a policy name from a flag or config value.
func ParseUnmatchedPolicy(s string) (UnmatchedPolicy, error) {
	switch UnmatchedPolicy(s) {
	case UnmatchedAppend, UnmatchedDelete, UnmatchedWarn:
		return UnmatchedPolicy(s), nil
	}
	return "", fmt.Errorf("invalid unmatched policy %q: use append, delete, or warn", s)
}

// MissingPolicy controls what happens when the target outline names a heading
// that has no addressable section in the source document.
type MissingPolicy string

const (
	// MissingError aborts the reorganization without writing anything.
	MissingError MissingPolicy = "error"

	// MissingWarn reports each missing heading and carries on without it.
	MissingWarn MissingPolicy = "warn"

	// MissingIgnore silently skips missing headings.
	MissingIgnore MissingPolicy = "ignore"
)

// ParseMissingPolicy validates a policy name from a flag or config value.
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch MissingPolicy(s) {
	case MissingError, MissingWarn, MissingIgnore:
		return MissingPolicy(s), nil
	}
	return "", fmt.Errorf("invalid missing policy %q: use error, warn, or ignore", s)
}

// OutlineFormat selects the outline file format written by generate.
type OutlineFormat string

const (
	OutlineYAML     OutlineFormat = "yaml"
	OutlineMarkdown OutlineFormat = "markdown"
)

// ParseOutlineFormat validates an outline format name.
func ParseOutlineFormat(s string) (OutlineFormat, error) {
	switch OutlineFormat(s) {
	case OutlineYAML, OutlineMarkdown:
		return OutlineFormat(s), nil
	}
	return "", fmt.Errorf("invalid outline format %q: use yaml or markdown", s)
}

// GenerateConfig holds settings for the generate command.
type GenerateConfig struct {
	// MaxLevel is the deepest heading level included in the outline
	// (default 6). Deeper headings are treated as ordinary content.
	MaxLevel int `json:"max_level" yaml:"max_level"`

	// Format selects the outline file format: yaml or markdown.
	Format OutlineFormat `json:"format" yaml:"format"`

	// Verbose enables per-section progress lines.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// ReorganizeConfig holds settings for the reorganize command.
type ReorganizeConfig struct {
	// MaxLevel is the deepest heading level treated as a section boundary
	// (default 6). It should match the value used when the outline was
	// generated.
	MaxLevel int `json:"max_level" yaml:"max_level"`

	// Unmatched is the policy for source sections absent from the outline:
	// append, delete, or warn (default append).
	Unmatched UnmatchedPolicy `json:"unmatched" yaml:"unmatched"`

	// Missing is the policy for outline headings absent from the source:
	// error, warn, or ignore (default warn).
	Missing MissingPolicy `json:"missing" yaml:"missing"`

	// Verbose enables per-section progress lines.
	Verbose bool `json:"verbose" yaml:"verbose"`
}
