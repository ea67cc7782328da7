// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit copies planned sections' elements into the order the output
// document will carry.
package emit

import (
	"fmt"
	"io"

	"github.com/pdiddy/wordreorg/pkg/types"
)

// Cloner deep-copies one body element. internal/docio provides the
// document-library implementation; tests supply fakes.
type Cloner interface {
	CloneItem(item any) (any, error)
}

// maxCopyWarnings caps per-element warning lines per run; later failures
// are counted silently.
const maxCopyWarnings = 5

// Result summarizes an emission pass.
type Result struct {
	// Sections is the number of sections that contributed elements.
	Sections int

	// Elements is the number of elements successfully copied.
	Elements int

	// CopyErrors counts elements that failed to copy and were skipped.
	CopyErrors int
}

// HasFailures reports whether any element failed to copy.
func (r Result) HasFailures() bool {
	return r.CopyErrors > 0
}

// Collect clones every element of every section in plan order and returns
// the copies, ready to append to a fresh document. A failed element copy is
// reported to errw and skipped; the pass always runs to completion, and
// after maxCopyWarnings reports the remaining failures are only counted.
// Verbose per-section progress goes to out.
func Collect(sections []types.Section, c Cloner, verbose bool, out, errw io.Writer) ([]any, Result) {
	var res Result
	var items []any

	total := 0
	for _, s := range sections {
		total += len(s.Elements)
	}
	if total == 0 && verbose {
		fmt.Fprintln(out, "note: no elements found to copy across scheduled sections")
	}

	for _, s := range sections {
		if len(s.Elements) == 0 {
			continue
		}
		if verbose {
			fmt.Fprintf(out, "  - writing section %q (%d elements)\n", s.Heading, len(s.Elements))
		}
		res.Sections++

		for _, el := range s.Elements {
			copied, err := c.CloneItem(el)
			if err != nil {
				res.CopyErrors++
				if res.CopyErrors <= maxCopyWarnings {
					fmt.Fprintf(errw, "warning: failed to copy an element in section %q: %v\n", s.Heading, err)
				}
				if res.CopyErrors == maxCopyWarnings+1 {
					fmt.Fprintln(errw, "warning: further element copy errors will be suppressed")
				}
				continue
			}
			items = append(items, copied)
			res.Elements++
		}
	}

	return items, res
}
