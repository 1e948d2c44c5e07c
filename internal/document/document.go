package document

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/ironsheep/game-result-mcp/internal/geometry"
)

// ErrInvalidDocument is returned by New when the input violates the page model.
var ErrInvalidDocument = errors.New("invalid document")

// TextFragment is one OCR-detected token with its bounding polygon.
type TextFragment struct {
	Text    string           `json:"text"`
	Polygon geometry.Polygon `json:"polygon"`
}

// Document is a page of OCR fragments. Use New to construct one.
type Document struct {
	pageWidth float64
	fragments []TextFragment
}

// New validates the input and returns a Document that owns a private copy of
// the fragments.
//
// The page width must be positive and finite, and every vertex coordinate must
// be finite. Empty fragment text is allowed.
func New(pageWidth float64, fragments []TextFragment) (*Document, error) {
	if math.IsNaN(pageWidth) || math.IsInf(pageWidth, 0) || pageWidth <= 0 {
		return nil, fmt.Errorf("%w: page width %v must be a positive number", ErrInvalidDocument, pageWidth)
	}

	copied := make([]TextFragment, len(fragments))
	for i, f := range fragments {
		for j, v := range f.Polygon {
			if !finite(v.X) || !finite(v.Y) {
				return nil, fmt.Errorf("%w: fragment %d vertex %d has non-finite coordinates (%v, %v)",
					ErrInvalidDocument, i, j, v.X, v.Y)
			}
		}
		copied[i] = TextFragment{
			Text:    f.Text,
			Polygon: append(geometry.Polygon(nil), f.Polygon...),
		}
	}

	return &Document{
		pageWidth: pageWidth,
		fragments: copied,
	}, nil
}

// PageWidth returns the page width in pixels.
func (d *Document) PageWidth() float64 {
	return d.pageWidth
}

// Len returns the number of fragments.
func (d *Document) Len() int {
	return len(d.fragments)
}

// Fragments returns a copy of the document's fragments in OCR emission order.
func (d *Document) Fragments() []TextFragment {
	out := make([]TextFragment, len(d.fragments))
	for i, f := range d.fragments {
		out[i] = TextFragment{
			Text:    f.Text,
			Polygon: append(geometry.Polygon(nil), f.Polygon...),
		}
	}
	return out
}

type textWithCenter struct {
	center float64
	text   string
}

// ScanColumn returns the text of every fragment crossing the column at
// relativePosition * PageWidth, sorted by vertical center (top of page first).
// Fragments with equal centers keep their emission order.
func (d *Document) ScanColumn(relativePosition float64) []string {
	// NaN fails both comparisons, so check it explicitly.
	if math.IsNaN(relativePosition) || relativePosition < 0 || relativePosition > 1 {
		return []string{}
	}
	column := relativePosition * d.pageWidth

	inColumn := make([]textWithCenter, 0)
	for _, f := range d.fragments {
		if geometry.StraddlesColumn(f.Polygon, column) {
			inColumn = append(inColumn, textWithCenter{
				center: geometry.VerticalCenter(f.Polygon),
				text:   f.Text,
			})
		}
	}

	sort.SliceStable(inColumn, func(i, j int) bool {
		return inColumn[i].center < inColumn[j].center
	})

	texts := make([]string, len(inColumn))
	for i, t := range inColumn {
		texts[i] = t.text
	}
	return texts
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
