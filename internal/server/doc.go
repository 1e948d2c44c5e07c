// Package server implements the MCP (Model Context Protocol) server that
// exposes game-result extraction as tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Loading:
//   - result_load: Load a Vision JSON response or OCR an image; returns a result_id
//
// Fields:
//   - result_ranking: Player ids in ranking order
//   - result_score: Scores as digit strings
//   - result_order: Player ids in turn order
//   - result_summary: All three fields plus standings
//
// Inspection:
//   - result_scan_column: Raw texts crossing a column
//   - result_save: Write the document as Vision JSON
//   - result_overlay: Draw band columns and fragment outlines over the screenshot
//   - result_evict: Drop a result
//   - ocr_info: Tesseract availability
//
// # Result Caching
//
// Loaded results are kept in a ResultCache keyed by a random id. Fields are
// extracted on first request and memoized inside the result, so asking for the
// same field twice never rescans the document.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// A field that cannot be extracted is not an error: the tool succeeds with an
// empty list.
package server
