// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PreambleHeading is the sentinel heading text for content that precedes the
// first heading in a document.
const PreambleHeading = "__PREAMBLE__"

// Heading is one entry in a document's flat heading sequence.
type Heading struct {
	// Text is the heading's paragraph text, trimmed of edge whitespace.
	Text string `json:"text" yaml:"text"`

	// Level is the heading depth, 1-based. 0 is reserved for the preamble.
	Level int `json:"level" yaml:"level"`
}

// Section is a heading together with the contiguous body elements that follow
// it, up to (not including) the next heading of any level.
type Section struct {
	// Heading is the section's heading text, or PreambleHeading for content
	// before the first heading.
	Heading string

	// Level is the heading depth: 0 for the preamble, 1-based otherwise.
	Level int

	// Elements holds the section's body elements in document order, the
	// heading paragraph itself first. Nil when the scan ran without element
	// capture.
	Elements []any
}

// IsPreamble reports whether the section holds content from before the first
// heading.
func (s Section) IsPreamble() bool {
	return s.Level == 0
}
