// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// LoadMarkdown returns the heading sequence of a Markdown outline in
// document order. Only the order matters to reorganization, so heading
// levels are not kept. A document with no headings is an error.
func LoadMarkdown(data []byte) ([]string, error) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(data))

	var headings []string
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			if t := headingText(h, data); t != "" {
				headings = append(headings, t)
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing markdown outline: %w", err)
	}
	if len(headings) == 0 {
		return nil, fmt.Errorf("no headings found in markdown outline")
	}
	return headings, nil
}

// headingText collects the literal text segments of a heading node.
func headingText(h *ast.Heading, src []byte) string {
	var b bytes.Buffer
	for child := h.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
		}
	}
	return strings.TrimSpace(b.String())
}
