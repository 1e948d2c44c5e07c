package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/game-result-mcp/internal/document"
	"github.com/ironsheep/game-result-mcp/internal/geometry"
)

// Options control recognition and preprocessing.
type Options struct {
	// Language is the Tesseract language code, e.g. "eng".
	Language string

	// Upscale enlarges the image by this factor before OCR. Values <= 0 are
	// treated as 1.
	Upscale float64

	// Binarize converts the image to black and white at Threshold.
	Binarize  bool
	Threshold uint8

	// MinConfidence drops words below this confidence (0.0 to 1.0).
	MinConfidence float64
}

// DefaultOptions returns English recognition without preprocessing.
func DefaultOptions() Options {
	return Options{
		Language:  "eng",
		Upscale:   1.0,
		Threshold: 128,
	}
}

// ExtractDocument performs word-level OCR on the image at imagePath.
//
// Parameters:
//   - imagePath: Path to the image file. Supports PNG, JPEG, GIF, TIFF, BMP.
//   - opts: Recognition language and preprocessing.
//
// Returns:
//   - *document.Document: one fragment per recognised word, in Tesseract's
//     reading order, with page width equal to the image width.
//   - error: Non-nil if the image cannot be loaded or OCR fails.
func ExtractDocument(imagePath string, opts Options) (*document.Document, error) {
	img, err := imaging.Open(imagePath, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return ExtractDocumentFromImage(img, opts)
}

// ExtractDocumentFromImage is ExtractDocument for an image already in memory.
func ExtractDocumentFromImage(img image.Image, opts Options) (*document.Document, error) {
	if opts.Language == "" {
		opts.Language = "eng"
	}
	scale := opts.Upscale
	if scale <= 0 {
		scale = 1.0
	}

	prepared := Preprocess(img, scale, opts.Binarize, opts.Threshold)

	var buf bytes.Buffer
	if err := png.Encode(&buf, prepared); err != nil {
		return nil, fmt.Errorf("failed to encode image for OCR: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(opts.Language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	fragments := fragmentsFromBoxes(boxes, scale, opts.MinConfidence)
	return document.New(float64(img.Bounds().Dx()), fragments)
}

// Preprocess applies the upscale and threshold steps. It returns img
// unchanged when neither applies.
func Preprocess(img image.Image, scale float64, binarize bool, threshold uint8) image.Image {
	out := img
	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(img.Bounds().Dx()) * scale)
		newHeight := int(float64(img.Bounds().Dy()) * scale)
		out = imaging.Resize(out, newWidth, newHeight, imaging.Lanczos)
	}
	if binarize {
		out = segment.Threshold(out, threshold)
	}
	return out
}

// fragmentsFromBoxes converts Tesseract word boxes found on an image enlarged
// by scale into fragments in original image coordinates. Blank words and words
// under minConfidence are dropped.
func fragmentsFromBoxes(boxes []gosseract.BoundingBox, scale, minConfidence float64) []document.TextFragment {
	fragments := make([]document.TextFragment, 0, len(boxes))
	for _, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}
		if box.Confidence/100.0 < minConfidence {
			continue
		}
		polygon := geometry.Rect(
			float64(box.Box.Min.X), float64(box.Box.Min.Y),
			float64(box.Box.Max.X), float64(box.Box.Max.Y),
		)
		if scale != 1.0 {
			polygon = polygon.Scale(1 / scale)
		}
		fragments = append(fragments, document.TextFragment{
			Text:    word,
			Polygon: polygon,
		})
	}
	return fragments
}

// OCRInfo contains information about the OCR subsystem.
type OCRInfo struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
	Backend   string `json:"backend"`
}

// GetOCRInfo reports whether Tesseract can be used.
func GetOCRInfo() (info OCRInfo) {
	info.Backend = "gosseract"
	defer func() {
		if r := recover(); r != nil {
			info.Available = false
			info.Error = fmt.Sprint(r)
		}
	}()

	client := gosseract.NewClient()
	defer client.Close()

	info.Version = client.Version()
	info.Available = info.Version != ""
	if !info.Available {
		info.Error = "tesseract version unavailable"
	}
	return info
}
