package server

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/game-result-mcp/internal/document"
	"github.com/ironsheep/game-result-mcp/internal/extract"
	"github.com/ironsheep/game-result-mcp/internal/ocr"
	"github.com/ironsheep/game-result-mcp/internal/overlay"
	"github.com/ironsheep/game-result-mcp/internal/vision"
)

// Source kinds accepted by result_load.
const (
	SourceVision = "vision"
	SourceImage  = "image"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "result_load", "result_ranking").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "result_load":
		return s.handleResultLoad(args)

	case "result_ranking":
		return s.handleField(args, (*extract.Result).PlayerRanking)
	case "result_score":
		return s.handleField(args, (*extract.Result).PlayerScore)
	case "result_order":
		return s.handleField(args, (*extract.Result).PlayerOrder)
	case "result_summary":
		return s.handleResultSummary(args)

	case "result_scan_column":
		return s.handleResultScanColumn(args)
	case "result_save":
		return s.handleResultSave(args)
	case "result_overlay":
		return s.handleResultOverlay(args)
	case "result_evict":
		return s.handleResultEvict(args)

	case "ocr_info":
		return ocr.GetOCRInfo(), nil

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// unmarshalArgs decodes tool arguments; a missing arguments object is treated
// as empty.
func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	return json.Unmarshal(args, v)
}

// === Loading ===

type resultLoadArgs struct {
	Path     string `json:"path"`
	Source   string `json:"source"`
	Language string `json:"language"`
}

// LoadResult is returned by result_load.
type LoadResult struct {
	ResultID      string  `json:"result_id"`
	Source        string  `json:"source"`
	PageWidth     float64 `json:"page_width"`
	FragmentCount int     `json:"fragment_count"`
}

func (s *Server) handleResultLoad(args json.RawMessage) (interface{}, error) {
	var a resultLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Source == "" {
		a.Source = detectSource(a.Path)
	}

	doc, err := s.loadDocument(a)
	if err != nil {
		return nil, err
	}

	id := s.cache.Put(extract.New(doc, s.extract), a.Source, a.Path)
	if s.debug {
		log.Printf("loaded %s (%s): %d fragments, width %v, id %s", a.Path, a.Source, doc.Len(), doc.PageWidth(), id)
	}

	return &LoadResult{
		ResultID:      id,
		Source:        a.Source,
		PageWidth:     doc.PageWidth(),
		FragmentCount: doc.Len(),
	}, nil
}

func (s *Server) loadDocument(a resultLoadArgs) (*document.Document, error) {
	switch a.Source {
	case SourceVision:
		resp, err := vision.Load(a.Path)
		if err != nil {
			return nil, err
		}
		return vision.ToDocument(resp)
	case SourceImage:
		opts := s.ocr
		if a.Language != "" {
			opts.Language = a.Language
		}
		return ocr.ExtractDocument(a.Path, opts)
	default:
		return nil, fmt.Errorf("unknown source %q: want %q or %q", a.Source, SourceVision, SourceImage)
	}
}

// detectSource picks the source kind from the file extension.
func detectSource(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return SourceVision
	}
	return SourceImage
}

// === Field Handlers ===

type resultIDArgs struct {
	ResultID string `json:"result_id"`
}

func (s *Server) lookup(args json.RawMessage) (Entry, error) {
	var a resultIDArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return Entry{}, err
	}
	entry, ok := s.cache.Get(a.ResultID)
	if !ok {
		return Entry{}, fmt.Errorf("unknown result_id %q: load it with result_load first", a.ResultID)
	}
	return entry, nil
}

// FieldResult is returned by the single-field tools.
type FieldResult struct {
	Values []string `json:"values"`
	Count  int      `json:"count"`
}

func (s *Server) handleField(args json.RawMessage, get func(*extract.Result) []string) (interface{}, error) {
	entry, err := s.lookup(args)
	if err != nil {
		return nil, err
	}
	values := get(entry.Result)
	return &FieldResult{Values: values, Count: len(values)}, nil
}

// SummaryResult is returned by result_summary.
type SummaryResult struct {
	extract.Summary
	Standings []extract.Standing `json:"standings"`
	Source    string             `json:"source"`
	Path      string             `json:"path"`
	// Roster and Cutoff are the matcher settings the ids were resolved with.
	Roster []string `json:"roster"`
	Cutoff float64  `json:"cutoff"`
}

func (s *Server) handleResultSummary(args json.RawMessage) (interface{}, error) {
	entry, err := s.lookup(args)
	if err != nil {
		return nil, err
	}
	matcher := entry.Result.Matcher()
	return &SummaryResult{
		Summary:   entry.Result.Summary(),
		Standings: entry.Result.Standings(),
		Source:    entry.Source,
		Path:      entry.Path,
		Roster:    matcher.Players(),
		Cutoff:    matcher.Cutoff(),
	}, nil
}

// === Inspection Handlers ===

type resultScanColumnArgs struct {
	ResultID string   `json:"result_id"`
	Position *float64 `json:"position"`
}

// ScanColumnResult is returned by result_scan_column.
type ScanColumnResult struct {
	Position float64  `json:"position"`
	Texts    []string `json:"texts"`
}

func (s *Server) handleResultScanColumn(args json.RawMessage) (interface{}, error) {
	var a resultScanColumnArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Position == nil {
		return nil, fmt.Errorf("position is required")
	}
	entry, ok := s.cache.Get(a.ResultID)
	if !ok {
		return nil, fmt.Errorf("unknown result_id %q: load it with result_load first", a.ResultID)
	}
	return &ScanColumnResult{
		Position: *a.Position,
		Texts:    entry.Result.Document().ScanColumn(*a.Position),
	}, nil
}

type resultSaveArgs struct {
	ResultID string `json:"result_id"`
	Path     string `json:"path"`
}

func (s *Server) handleResultSave(args json.RawMessage) (interface{}, error) {
	var a resultSaveArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	entry, ok := s.cache.Get(a.ResultID)
	if !ok {
		return nil, fmt.Errorf("unknown result_id %q: load it with result_load first", a.ResultID)
	}
	if err := vision.Save(a.Path, vision.FromDocument(entry.Result.Document())); err != nil {
		return nil, err
	}
	return map[string]interface{}{"path": a.Path, "saved": true}, nil
}

type resultEvictArgs struct {
	ResultID string `json:"result_id"`
	All      bool   `json:"all"`
}

func (s *Server) handleResultEvict(args json.RawMessage) (interface{}, error) {
	var a resultEvictArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.All {
		n := s.cache.Len()
		s.cache.Clear()
		return map[string]interface{}{"evicted": n > 0, "count": n}, nil
	}
	if a.ResultID == "" {
		return nil, fmt.Errorf("result_id is required unless all is set")
	}
	evicted := s.cache.Evict(a.ResultID)
	count := 0
	if evicted {
		count = 1
	}
	return map[string]interface{}{"evicted": evicted, "count": count}, nil
}

type resultOverlayArgs struct {
	ResultID      string `json:"result_id"`
	ImagePath     string `json:"image_path"`
	OutputPath    string `json:"output_path"`
	ShowFragments *bool  `json:"show_fragments"`
}

func (s *Server) handleResultOverlay(args json.RawMessage) (interface{}, error) {
	var a resultOverlayArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	entry, ok := s.cache.Get(a.ResultID)
	if !ok {
		return nil, fmt.Errorf("unknown result_id %q: load it with result_load first", a.ResultID)
	}

	imagePath := a.ImagePath
	if imagePath == "" && entry.Source == SourceImage {
		imagePath = entry.Path
	}
	var base image.Image
	if imagePath != "" {
		img, err := imaging.Open(imagePath, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("failed to open image: %w", err)
		}
		base = img
	}

	opts := overlay.DefaultOptions(s.extract)
	if a.ShowFragments != nil && !*a.ShowFragments {
		opts.FragmentColor = ""
	}
	img, err := overlay.Render(base, entry.Result.Document(), opts)
	if err != nil {
		return nil, err
	}

	if a.OutputPath != "" {
		if err := overlay.Save(a.OutputPath, img); err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"path":   a.OutputPath,
			"width":  img.Bounds().Dx(),
			"height": img.Bounds().Dy(),
		}, nil
	}
	return overlay.Encode(img)
}
