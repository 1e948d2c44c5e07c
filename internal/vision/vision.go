package vision

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ironsheep/game-result-mcp/internal/document"
	"github.com/ironsheep/game-result-mcp/internal/geometry"
)

// ErrNoPages is returned when a response carries no page, so the page width
// is unknown.
var ErrNoPages = errors.New("vision response has no pages")

// Response mirrors the fields of AnnotateImageResponse used for extraction.
type Response struct {
	TextAnnotations    []EntityAnnotation  `json:"textAnnotations"`
	FullTextAnnotation *FullTextAnnotation `json:"fullTextAnnotation,omitempty"`
}

// EntityAnnotation is one detected text element. The first annotation of a
// response is the whole page's text.
type EntityAnnotation struct {
	Locale       string       `json:"locale,omitempty"`
	Description  string       `json:"description"`
	BoundingPoly BoundingPoly `json:"boundingPoly"`
}

// BoundingPoly is the outline of an annotation.
type BoundingPoly struct {
	Vertices []Vertex `json:"vertices"`
}

// Vertex is a pixel coordinate. Vision omits zero coordinates.
type Vertex struct {
	X int `json:"x,omitempty"`
	Y int `json:"y,omitempty"`
}

// FullTextAnnotation carries page-level structure.
type FullTextAnnotation struct {
	Pages []Page `json:"pages"`
	Text  string `json:"text,omitempty"`
}

// Page holds page dimensions.
type Page struct {
	Width  int `json:"width"`
	Height int `json:"height,omitempty"`
}

type batch struct {
	Responses []Response `json:"responses"`
}

// Load reads a saved response from path.
func Load(path string) (*Response, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vision response: %w", err)
	}
	defer f.Close()

	resp, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return resp, nil
}

// Decode parses a response in any of the accepted layouts.
func Decode(r io.Reader) (*Response, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)

	// String-wrapped JSON: unwrap once.
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, fmt.Errorf("invalid string-encoded response: %w", err)
		}
		data = bytes.TrimSpace([]byte(inner))
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("invalid response JSON: %w", err)
	}

	if _, ok := probe["responses"]; ok {
		var b batch
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("invalid batch response: %w", err)
		}
		if len(b.Responses) == 0 {
			return nil, errors.New("batch response is empty")
		}
		return &b.Responses[0], nil
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("invalid response JSON: %w", err)
	}
	return &resp, nil
}

// PageWidth returns the width of the first page.
func (r *Response) PageWidth() (int, error) {
	if r.FullTextAnnotation == nil || len(r.FullTextAnnotation.Pages) == 0 {
		return 0, ErrNoPages
	}
	return r.FullTextAnnotation.Pages[0].Width, nil
}

// ToDocument converts the response into a validated Document, one fragment
// per text annotation in response order.
func ToDocument(r *Response) (*document.Document, error) {
	width, err := r.PageWidth()
	if err != nil {
		return nil, err
	}

	fragments := make([]document.TextFragment, 0, len(r.TextAnnotations))
	for _, a := range r.TextAnnotations {
		polygon := make(geometry.Polygon, len(a.BoundingPoly.Vertices))
		for i, v := range a.BoundingPoly.Vertices {
			polygon[i] = geometry.Vertex{X: float64(v.X), Y: float64(v.Y)}
		}
		fragments = append(fragments, document.TextFragment{
			Text:    a.Description,
			Polygon: polygon,
		})
	}

	return document.New(float64(width), fragments)
}

// FromDocument builds a response holding the document's fragments.
// Coordinates are rounded to whole pixels; the page width is at least 1.
func FromDocument(doc *document.Document) *Response {
	fragments := doc.Fragments()
	annotations := make([]EntityAnnotation, len(fragments))
	for i, f := range fragments {
		vertices := make([]Vertex, len(f.Polygon))
		for j, v := range f.Polygon {
			vertices[j] = Vertex{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
		}
		annotations[i] = EntityAnnotation{
			Description:  f.Text,
			BoundingPoly: BoundingPoly{Vertices: vertices},
		}
	}

	// Vision widths are whole pixels; keep sub-pixel pages loadable.
	width := int(math.Round(doc.PageWidth()))
	if width < 1 {
		width = 1
	}

	return &Response{
		TextAnnotations: annotations,
		FullTextAnnotation: &FullTextAnnotation{
			Pages: []Page{{Width: width}},
		},
	}
}

// Save writes the response to path as indented JSON.
func Save(path string, r *Response) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode vision response: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write vision response: %w", err)
	}
	return nil
}
