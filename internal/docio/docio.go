// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docio wraps the document library behind the small surface the
// pipeline needs: opening a document as an ordered element sequence,
// classifying heading paragraphs, deep-copying elements, and writing a new
// document.
package docio

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/fumiama/go-docx"
)

// Open reads and parses a Word document.
func Open(path string) (*docx.Docx, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", path, err)
	}
	return doc, nil
}

// New returns an empty document ready to receive copied elements.
func New() *docx.Docx {
	return docx.New().WithDefaultTheme()
}

// Items returns the ordered body elements of a document.
func Items(doc *docx.Docx) []any {
	return doc.Document.Body.Items
}

// Append adds elements to the end of a document's body.
func Append(doc *docx.Docx, items ...any) {
	doc.Document.Body.Items = append(doc.Document.Body.Items, items...)
}

// Save writes a document to path.
func Save(doc *docx.Docx, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating document %s: %w", path, err)
	}
	if _, err := doc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing document %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing document %s: %w", path, err)
	}
	return nil
}

// Cloner deep-copies body elements through an XML round trip, yielding
// values with no ties to the source document.
type Cloner struct{}

// CloneItem copies a single body element. Elements the library cannot
// re-encode produce an error; the caller decides whether that is fatal.
func (Cloner) CloneItem(item any) (any, error) {
	switch item.(type) {
	case *docx.Paragraph:
		dst := new(docx.Paragraph)
		if err := roundTrip(item, dst); err != nil {
			return nil, fmt.Errorf("copying paragraph: %w", err)
		}
		return dst, nil
	case *docx.Table:
		dst := new(docx.Table)
		if err := roundTrip(item, dst); err != nil {
			return nil, fmt.Errorf("copying table: %w", err)
		}
		return dst, nil
	default:
		return nil, fmt.Errorf("unsupported element type %T", item)
	}
}

// roundTrip re-encodes v and decodes the bytes into dst; the library's own
// marshal path serves as the deep copy.
func roundTrip(v, dst any) error {
	data, err := xml.Marshal(v)
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, dst)
}
