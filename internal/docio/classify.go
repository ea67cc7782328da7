// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docio

import (
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"
)

// headingStylePrefix starts every style value Word assigns to built-in
// heading paragraphs, in both the display form ("Heading 2") and the
// style-ID form ("Heading2").
const headingStylePrefix = "heading"

// Classifier identifies heading paragraphs up to a maximum level.
type Classifier struct {
	// MaxLevel is the deepest style level still treated as a heading.
	// Deeper headings are ordinary content.
	MaxLevel int
}

// Heading reports whether item is a heading paragraph within MaxLevel,
// returning its level and trimmed text. Style values without a trailing
// parsable level are ordinary content, as are levels outside 1..MaxLevel.
func (c Classifier) Heading(item any) (int, string, bool) {
	para, ok := item.(*docx.Paragraph)
	if !ok {
		return 0, "", false
	}
	if para.Properties == nil || para.Properties.Style == nil {
		return 0, "", false
	}
	level, ok := ParseHeadingLevel(para.Properties.Style.Val)
	if !ok || level > c.MaxLevel {
		return 0, "", false
	}
	return level, ParagraphText(para), true
}

// ParseHeadingLevel extracts the numeric level from a heading style value.
// It accepts "Heading 3" and "Heading3" in any case; anything else, and
// levels below 1, are not headings.
func ParseHeadingLevel(style string) (int, bool) {
	s := strings.TrimSpace(style)
	if len(s) < len(headingStylePrefix) || !strings.EqualFold(s[:len(headingStylePrefix)], headingStylePrefix) {
		return 0, false
	}
	rest := strings.TrimSpace(s[len(headingStylePrefix):])
	if rest == "" {
		return 0, false
	}
	level, err := strconv.Atoi(rest)
	if err != nil || level < 1 {
		return 0, false
	}
	return level, true
}

// ParagraphText concatenates the run text of a paragraph, trimmed of edge
// whitespace.
func ParagraphText(para *docx.Paragraph) string {
	var b strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				b.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(b.String())
}
