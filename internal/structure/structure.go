// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package structure groups a document's flat element sequence into
// heading-delimited sections in a single pass.
package structure

import (
	"strings"

	"github.com/pdiddy/wordreorg/pkg/types"
)

// Classifier decides whether a body element is a heading paragraph.
// internal/docio provides the style-based implementation; tests supply fakes.
type Classifier interface {
	// Heading returns the heading level and text of item, or ok=false when
	// item is ordinary content.
	Heading(item any) (level int, text string, ok bool)
}

// Scan walks items in document order and returns the resulting sections.
// Every heading within the classifier's reach starts a new section; content
// before the first heading forms a level-0 preamble section. With capture
// enabled each section retains its elements, the heading element first;
// without it only heading text and level are recorded. A preamble with no
// elements is never emitted, so a document that opens with a heading yields
// no preamble at all.
func Scan(items []any, c Classifier, capture bool) []types.Section {
	var sections []types.Section

	current := types.Section{Heading: types.PreambleHeading, Level: 0}
	var buf []any

	flush := func() {
		if current.Level == 0 && len(buf) == 0 {
			return
		}
		current.Heading = strings.TrimSpace(current.Heading)
		current.Elements = buf
		sections = append(sections, current)
	}

	for _, item := range items {
		if level, text, ok := c.Heading(item); ok {
			flush()
			current = types.Section{Heading: text, Level: level}
			buf = nil
			if capture {
				buf = []any{item}
			}
			continue
		}
		if capture {
			buf = append(buf, item)
		}
	}
	flush()

	return sections
}

// Headings returns the flat (text, level) sequence of the heading sections,
// in document order. The preamble is not a heading and is skipped.
func Headings(sections []types.Section) []types.Heading {
	var heads []types.Heading
	for _, s := range sections {
		if s.IsPreamble() {
			continue
		}
		heads = append(heads, types.Heading{Text: s.Heading, Level: s.Level})
	}
	return heads
}

// CountHeadings returns the number of heading sections, excluding any
// preamble.
func CountHeadings(sections []types.Section) int {
	n := 0
	for _, s := range sections {
		if !s.IsPreamble() {
			n++
		}
	}
	return n
}
