// Package vision reads and writes Google Cloud Vision text-detection responses
// and converts them to and from the document model.
//
// Two on-disk layouts are accepted:
//   - the AnnotateImageResponse JSON object itself, optionally wrapped in a
//     {"responses": [...]} batch envelope
//   - that JSON serialised once more as a JSON string, as written by tools
//     that dump the client library's JSON form through a second encoder
//
// Only the parts the extractor needs are modelled: each text annotation's
// description and bounding polygon, and the width of the first page.
package vision
