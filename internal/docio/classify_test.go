// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docio

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
)

// headingPara builds a styled paragraph the way parsed documents carry them.
func headingPara(styleVal, text string) *docx.Paragraph {
	return &docx.Paragraph{
		Properties: &docx.ParagraphProperties{
			Style: &docx.Style{Val: styleVal},
		},
		Children: []interface{}{
			&docx.Run{
				Children: []interface{}{
					&docx.Text{Text: text},
				},
			},
		},
	}
}

// --- ParseHeadingLevel ---

func TestParseHeadingLevel(t *testing.T) {
	tests := []struct {
		style string
		level int
		ok    bool
	}{
		{"Heading 1", 1, true},
		{"Heading 6", 6, true},
		{"heading 2", 2, true},
		{"HEADING 3", 3, true},
		{"Heading2", 2, true},
		{"heading4", 4, true},
		{"Heading 10", 10, true},
		{"  Heading 5  ", 5, true},
		{"Heading", 0, false},
		{"Heading ", 0, false},
		{"Heading Two", 0, false},
		{"Heading 2 Char", 0, false},
		{"Heading 0", 0, false},
		{"Heading -1", 0, false},
		{"Title", 0, false},
		{"Normal", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			level, ok := ParseHeadingLevel(tt.style)
			if ok != tt.ok || level != tt.level {
				t.Errorf("ParseHeadingLevel(%q) = (%d, %v), want (%d, %v)", tt.style, level, ok, tt.level, tt.ok)
			}
		})
	}
}

// --- Classifier ---

func TestClassifierHeading(t *testing.T) {
	c := Classifier{MaxLevel: 6}

	level, text, ok := c.Heading(headingPara("Heading2", "Background"))
	if !ok || level != 2 || text != "Background" {
		t.Errorf("Heading = (%d, %q, %v), want (2, Background, true)", level, text, ok)
	}
}

func TestClassifierRespectsMaxLevel(t *testing.T) {
	c := Classifier{MaxLevel: 2}

	if _, _, ok := c.Heading(headingPara("Heading3", "Too Deep")); ok {
		t.Error("level 3 should be ordinary content when MaxLevel is 2")
	}
	if _, _, ok := c.Heading(headingPara("Heading2", "Fine")); !ok {
		t.Error("level 2 should be a heading when MaxLevel is 2")
	}
}

func TestClassifierRejectsNonHeadings(t *testing.T) {
	c := Classifier{MaxLevel: 6}

	if _, _, ok := c.Heading("not a paragraph"); ok {
		t.Error("non-paragraph items are not headings")
	}
	if _, _, ok := c.Heading(&docx.Paragraph{}); ok {
		t.Error("a paragraph without properties is not a heading")
	}
	if _, _, ok := c.Heading(headingPara("Title", "Document Title")); ok {
		t.Error("a non-heading style is not a heading")
	}
	if _, _, ok := c.Heading(&docx.Table{}); ok {
		t.Error("tables are not headings")
	}
}

// --- ParagraphText ---

func TestParagraphTextJoinsRuns(t *testing.T) {
	para := &docx.Paragraph{
		Children: []interface{}{
			&docx.Run{Children: []interface{}{&docx.Text{Text: "  Hello"}}},
			&docx.Run{Children: []interface{}{&docx.Text{Text: " World  "}}},
		},
	}
	if got := ParagraphText(para); got != "Hello World" {
		t.Errorf("ParagraphText = %q, want %q", got, "Hello World")
	}
}

func TestParagraphTextIgnoresNonRuns(t *testing.T) {
	para := &docx.Paragraph{
		Children: []interface{}{
			"stray child",
			&docx.Run{Children: []interface{}{&docx.Text{Text: "kept"}}},
		},
	}
	if got := ParagraphText(para); got != "kept" {
		t.Errorf("ParagraphText = %q, want %q", got, "kept")
	}
}

func TestParagraphTextEmpty(t *testing.T) {
	if got := ParagraphText(&docx.Paragraph{}); got != "" {
		t.Errorf("ParagraphText = %q, want empty", got)
	}
}

// --- Cloner ---

func TestCloneItemParagraph(t *testing.T) {
	src := headingPara("Heading1", "Original")

	copied, err := Cloner{}.CloneItem(src)
	if err != nil {
		t.Fatalf("CloneItem: %v", err)
	}
	clone, ok := copied.(*docx.Paragraph)
	if !ok {
		t.Fatalf("CloneItem returned %T, want *docx.Paragraph", copied)
	}
	if clone == src {
		t.Fatal("CloneItem returned the same pointer")
	}
	if got := ParagraphText(clone); got != "Original" {
		t.Errorf("clone text = %q, want %q", got, "Original")
	}

	// Mutating the clone must leave the source untouched.
	run := clone.Children[0].(*docx.Run)
	run.Children[0].(*docx.Text).Text = "Changed"
	if got := ParagraphText(src); got != "Original" {
		t.Errorf("source text = %q after clone mutation, want %q", got, "Original")
	}
}

func TestCloneItemTable(t *testing.T) {
	// Seed the table through the library's own decode path, as parsed
	// documents do.
	const raw = `<w:tbl><w:tblPr></w:tblPr><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`
	src := new(docx.Table)
	if err := xml.Unmarshal([]byte(raw), src); err != nil {
		t.Fatalf("seeding table: %v", err)
	}

	copied, err := Cloner{}.CloneItem(src)
	if err != nil {
		t.Fatalf("CloneItem: %v", err)
	}
	clone, ok := copied.(*docx.Table)
	if !ok {
		t.Fatalf("CloneItem returned %T, want *docx.Table", copied)
	}
	if clone == src {
		t.Fatal("CloneItem returned the same pointer")
	}
}

func TestCloneItemUnsupported(t *testing.T) {
	_, err := Cloner{}.CloneItem(42)
	if err == nil {
		t.Fatal("expected error for unsupported element type")
	}
	if got := err.Error(); !strings.Contains(got, "unsupported element type") {
		t.Errorf("error = %q, want mention of unsupported element type", got)
	}
}
