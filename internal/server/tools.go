package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func resultIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Id returned by result_load",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Loading
		{
			Name:        "result_load",
			Description: "Load an end-of-game screenshot, either a saved Google Vision text-detection response (.json) or an image to OCR with Tesseract. Returns a result_id for the other tools.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the Vision JSON response or the image file",
					},
					"source": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"vision", "image"},
						"description": "Input kind. Default: vision for .json files, image otherwise",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code for image sources. Default from server config",
					},
				},
				"required": []string{"path"},
			},
		},

		// Fields
		{
			Name:        "result_ranking",
			Description: "Player ids in final ranking order. Empty when the ranking column could not be read.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"result_id": resultIDProperty(),
				},
				"required": []string{"result_id"},
			},
		},
		{
			Name:        "result_score",
			Description: "Final scores, top to bottom, as digit strings. Empty when no score column was found.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"result_id": resultIDProperty(),
				},
				"required": []string{"result_id"},
			},
		},
		{
			Name:        "result_order",
			Description: "Player ids in turn order. Empty when the order column could not be read.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"result_id": resultIDProperty(),
				},
				"required": []string{"result_id"},
			},
		},
		{
			Name:        "result_summary",
			Description: "Ranking, scores and turn order together, plus standings pairing each ranked player with a score.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"result_id": resultIDProperty(),
				},
				"required": []string{"result_id"},
			},
		},

		// Inspection
		{
			Name:        "result_scan_column",
			Description: "Texts crossing a vertical line at a relative position (0.0 left edge, 1.0 right edge), top to bottom. Use this to tune column bands.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"result_id": resultIDProperty(),
					"position": map[string]interface{}{
						"type":        "number",
						"description": "Relative horizontal position in [0, 1]",
					},
				},
				"required": []string{"result_id", "position"},
			},
		},
		{
			Name:        "result_save",
			Description: "Write the loaded document as a Vision-style JSON response, so it can be reloaded without OCR.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"result_id": resultIDProperty(),
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the JSON file to write",
					},
				},
				"required": []string{"result_id", "path"},
			},
		},
		{
			Name:        "result_overlay",
			Description: "Draw the ranking, score and order band columns and every text fragment outline over the screenshot. Without a screenshot the overlay is drawn on a blank canvas. Returns base64 PNG unless output_path is given.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"result_id": resultIDProperty(),
					"image_path": map[string]interface{}{
						"type":        "string",
						"description": "Screenshot to draw on. Default: the loaded image for image sources, blank canvas otherwise",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Write the overlay to this file (png or jpg) instead of returning it",
					},
					"show_fragments": map[string]interface{}{
						"type":        "boolean",
						"description": "Outline every text fragment",
						"default":     true,
					},
				},
				"required": []string{"result_id"},
			},
		},
		{
			Name:        "result_evict",
			Description: "Drop a loaded result from memory, or every loaded result when all is true.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"result_id": resultIDProperty(),
					"all": map[string]interface{}{
						"type":        "boolean",
						"description": "Drop every loaded result",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "ocr_info",
			Description: "Report whether Tesseract is available for image sources.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
