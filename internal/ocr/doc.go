// Package ocr turns a screenshot into a document.Document using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2). Every word
// Tesseract finds becomes one text fragment whose polygon is the word's
// bounding box, in the pixel coordinates of the original image. The page width
// of the document is the image width.
//
// # Prerequisites
//
// Tesseract and its language data must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// # Preprocessing
//
// Small screenshots OCR poorly. Options.Upscale enlarges the image (Lanczos)
// before recognition and Options.Binarize applies a fixed black/white
// threshold, which helps with the coloured backgrounds of game screens. Word
// boxes are always scaled back to original image coordinates, so the
// preprocessing never changes where a column falls.
//
// # Error Handling
//
// Functions return errors for:
//   - Missing or undecodable image files
//   - Unsupported language codes
//   - Tesseract initialization failures
//
// If word boxes cannot be read, ExtractDocument fails rather than returning
// an empty document, since a document without fragments is
// indistinguishable from a blank screenshot.
package ocr
