// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline builds, serializes, and loads the nested heading outline
// that drives document reorganization.
package outline

import (
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/wordreorg/pkg/types"
)

// tocKey is the required top-level mapping key of an outline file.
const tocKey = "toc"

// Node is one heading in the nested outline forest. Depth is carried by
// nesting alone; no numeric level survives serialization.
type Node struct {
	Heading  string
	Children []*Node
}

// MarshalYAML writes childless nodes as bare heading strings and parents as
// {heading, children} mappings, keys in that order.
func (n *Node) MarshalYAML() (any, error) {
	if len(n.Children) == 0 {
		return n.Heading, nil
	}
	return struct {
		Heading  string  `yaml:"heading"`
		Children []*Node `yaml:"children"`
	}{Heading: n.Heading, Children: n.Children}, nil
}

// File is the on-disk outline document shape.
type File struct {
	TOC []*Node `yaml:"toc"`
}

// Build nests a flat heading sequence into a forest: each heading becomes a
// child of the nearest preceding heading with a strictly shallower level, or
// a new root when no such heading is open. Level jumps are tolerated in both
// directions. Level-0 entries are ignored.
func Build(headings []types.Heading) []*Node {
	var roots []*Node

	type frame struct {
		level int
		node  *Node
	}
	var stack []frame

	for _, h := range headings {
		if h.Level <= 0 {
			continue
		}
		for len(stack) > 0 && stack[len(stack)-1].level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		node := &Node{Heading: h.Text}
		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, frame{level: h.Level, node: node})
	}

	return roots
}

// Flatten returns the pre-order heading sequence of a forest: each node
// before its children, siblings in order.
func Flatten(roots []*Node) []string {
	var out []string
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			out = append(out, n.Heading)
			walk(n.Children)
		}
	}
	walk(roots)
	return out
}

// WriteYAML serializes the forest under the top-level toc key, two-space
// indented, in construction order.
func WriteYAML(w io.Writer, roots []*Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{TOC: roots}); err != nil {
		return fmt.Errorf("encoding outline: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding outline: %w", err)
	}
	return nil
}

// WriteMarkdown renders the forest as a Markdown heading skeleton, one
// heading per line with depth expressed as heading level. Markdown stops at
// six levels, so deeper nesting flattens to ######.
func WriteMarkdown(w io.Writer, roots []*Node) error {
	var walk func(nodes []*Node, depth int) error
	walk = func(nodes []*Node, depth int) error {
		marks := depth
		if marks > 6 {
			marks = 6
		}
		for _, n := range nodes {
			if _, err := fmt.Fprintf(w, "%s %s\n", strings.Repeat("#", marks), n.Heading); err != nil {
				return err
			}
			if err := walk(n.Children, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(roots, 1); err != nil {
		return fmt.Errorf("writing outline: %w", err)
	}
	return nil
}
