// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package outline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// LoadFile reads an outline file and returns the flattened target heading
// order. Files ending in .md or .markdown are read as Markdown heading
// skeletons, everything else as the YAML outline form. Warnings about
// skipped entries go to warn.
func LoadFile(path string, warn io.Writer) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading outline file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return LoadMarkdown(data)
	default:
		return Load(data, warn)
	}
}

// Load parses the YAML outline form and returns its pre-order heading
// sequence. The document must be a mapping with a top-level toc list; list
// entries are either bare heading strings or mappings with a heading key and
// an optional children list. Unrecognized entries are reported to warn and
// skipped; a document yielding no headings at all is an error.
func Load(data []byte, warn io.Writer) ([]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing outline file: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("outline file is empty")
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("outline file must be a mapping with a top-level %q key", tocKey)
	}

	var list *yaml.Node
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value == tocKey {
			list = doc.Content[i+1]
			break
		}
	}
	if list == nil {
		return nil, fmt.Errorf("outline file must contain a top-level %q key", tocKey)
	}
	if list.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("the %q key must contain a list", tocKey)
	}

	headings := Flatten(buildNodes(list.Content, warn))
	if len(headings) == 0 {
		return nil, fmt.Errorf("no valid heading entries found under the %q key", tocKey)
	}
	return headings, nil
}

// buildNodes converts recognized entries into outline nodes, so that loading
// walks the same tree shape writing produces. Skipped entries are reported
// to warn.
func buildNodes(items []*yaml.Node, warn io.Writer) []*Node {
	var nodes []*Node
	for _, item := range items {
		switch {
		case item.Kind == yaml.ScalarNode && item.Tag == "!!str":
			nodes = append(nodes, &Node{Heading: strings.TrimSpace(item.Value)})
		case item.Kind == yaml.MappingNode:
			heading, children := mappingEntry(item)
			if heading == nil || heading.Kind != yaml.ScalarNode {
				fmt.Fprintf(warn, "warning: skipping outline entry without a usable heading (line %d)\n", item.Line)
				continue
			}
			node := &Node{Heading: strings.TrimSpace(heading.Value)}
			if children != nil && children.Kind == yaml.SequenceNode {
				node.Children = buildNodes(children.Content, warn)
			}
			nodes = append(nodes, node)
		default:
			fmt.Fprintf(warn, "warning: skipping unrecognized outline entry (line %d)\n", item.Line)
		}
	}
	return nodes
}

// mappingEntry pulls the heading and children values out of an entry mapping.
func mappingEntry(item *yaml.Node) (heading, children *yaml.Node) {
	for i := 0; i+1 < len(item.Content); i += 2 {
		switch item.Content[i].Value {
		case "heading":
			heading = item.Content[i+1]
		case "children":
			children = item.Content[i+1]
		}
	}
	return heading, children
}
