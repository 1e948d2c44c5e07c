package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	s := NewDefault()
	if s == nil {
		t.Fatal("NewDefault() returned nil")
	}
	if s.cache == nil {
		t.Fatal("NewDefault() did not initialize cache")
	}
	if len(s.extract.Roster) == 0 {
		t.Error("NewDefault() should carry the default roster")
	}
}

func TestMCPRequest_Decode(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantTool   string
		wantResult string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"r-1","method":"tools/call","params":{"name":"result_ranking","arguments":{"result_id":"abc"}}}`,
			"r-1", "result_ranking", "abc",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"tools/call","params":{"name":"result_score","arguments":{"result_id":"def"}}}`,
			float64(42), // JSON numbers decode as float64
			"result_score", "def",
		},
		{
			"null id without arguments",
			`{"jsonrpc":"2.0","id":null,"method":"tools/call","params":{"name":"ocr_info"}}`,
			nil, "ocr_info", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req MCPRequest
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}
			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}

			var params ToolCallParams
			if err := json.Unmarshal(req.Params, &params); err != nil {
				t.Fatalf("Failed to unmarshal params: %v", err)
			}
			if params.Name != tt.wantTool {
				t.Errorf("tool: got %s, want %s", params.Name, tt.wantTool)
			}

			var args resultIDArgs
			if err := unmarshalArgs(params.Arguments, &args); err != nil {
				t.Fatalf("Failed to unmarshal arguments: %v", err)
			}
			if args.ResultID != tt.wantResult {
				t.Errorf("result_id: got %q, want %q", args.ResultID, tt.wantResult)
			}
		})
	}
}

// TestServe_ToolResponses checks the wire form of tool results and tool
// failures as a client sees them.
func TestServe_ToolResponses(t *testing.T) {
	s := NewDefault()
	id := loadScoreScreen(t, s).ResultID

	call := func(reqID int, tool, resultID string) string {
		return fmt.Sprintf(`{"jsonrpc":"2.0","id":%d,"method":"tools/call","params":{"name":%q,"arguments":{"result_id":%q}}}`,
			reqID, tool, resultID)
	}
	in := strings.NewReader(strings.Join([]string{
		call(1, "result_ranking", id),
		call(2, "result_score", id),
		call(3, "result_order", "missing"),
	}, "\n"))
	var out bytes.Buffer
	if err := s.Serve(in, &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 responses, got %d: %q", len(lines), out.String())
	}

	type wireResponse struct {
		JSONRPC string  `json:"jsonrpc"`
		ID      float64 `json:"id"`
		Result  *struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"result"`
		Error *MCPError `json:"error"`
	}

	tests := []struct {
		name       string
		wantValues []string
		wantError  string
	}{
		{"ranking", []string{"Neil.W", "chiang831", "stan619"}, ""},
		{"score", []string{"120", "95", "80"}, ""},
		{"unknown result", nil, "unknown result_id"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp wireResponse
			if err := json.Unmarshal([]byte(lines[i]), &resp); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}
			if resp.JSONRPC != "2.0" || resp.ID != float64(i+1) {
				t.Errorf("envelope: got jsonrpc %s id %v", resp.JSONRPC, resp.ID)
			}

			if tt.wantError != "" {
				if resp.Error == nil {
					t.Fatal("Expected error response")
				}
				if resp.Error.Code != -32000 || resp.Error.Message != "Tool execution failed" {
					t.Errorf("error: got %d %q", resp.Error.Code, resp.Error.Message)
				}
				if data, _ := resp.Error.Data.(string); !strings.Contains(data, tt.wantError) {
					t.Errorf("error data: got %v, want it to mention %q", resp.Error.Data, tt.wantError)
				}
				if resp.Result != nil {
					t.Error("error responses carry no result")
				}
				return
			}

			if resp.Error != nil {
				t.Fatalf("Unexpected error: %+v", resp.Error)
			}
			if resp.Result == nil || len(resp.Result.Content) != 1 {
				t.Fatalf("content: got %+v", resp.Result)
			}
			var field FieldResult
			if err := json.Unmarshal([]byte(resp.Result.Content[0].Text), &field); err != nil {
				t.Fatalf("Failed to decode content text: %v", err)
			}
			if !reflect.DeepEqual(field.Values, tt.wantValues) || field.Count != len(tt.wantValues) {
				t.Errorf("field: got %+v, want %v", field, tt.wantValues)
			}
		})
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := NewDefault()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "initialize",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if resp.ID != 1 {
		t.Errorf("ID: got %v, want 1", resp.ID)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion: got %v", result["protocolVersion"])
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s := NewDefault()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      "ping-1",
		Method:  "ping",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}
	if resp.ID != "ping-1" {
		t.Errorf("ID: got %v, want ping-1", resp.ID)
	}
}

func TestHandleRequest_ToolsList(t *testing.T) {
	s := NewDefault()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/list",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	tools, ok := result["tools"]
	if !ok {
		t.Fatal("Result should contain 'tools' key")
	}

	toolsList, ok := tools.([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	// Should have multiple tools defined
	if len(toolsList) < 8 {
		t.Errorf("Expected at least 8 tools, got %d", len(toolsList))
	}
}

func TestHandleRequest_NotificationsInitialized(t *testing.T) {
	s := NewDefault()
	req := &MCPRequest{
		JSONRPC: "2.0",
		Method:  "notifications/initialized",
	}

	resp := s.handleRequest(req)

	// Notifications don't get responses
	if resp != nil {
		t.Error("notifications/initialized should return nil response")
	}
}

func TestHandleRequest_MethodNotFound(t *testing.T) {
	s := NewDefault()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "nonexistent/method",
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error == nil {
		t.Fatal("Expected error for unknown method")
	}
	if resp.Error.Code != -32601 {
		t.Errorf("Error code: got %d, want -32601", resp.Error.Code)
	}
}

func TestHandleInitialize(t *testing.T) {
	s := NewDefault()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      "init-1",
	}

	resp := s.handleInitialize(req)

	if resp.ID != "init-1" {
		t.Errorf("ID: got %v, want init-1", resp.ID)
	}
	if resp.JSONRPC != "2.0" {
		t.Errorf("JSONRPC: got %s, want 2.0", resp.JSONRPC)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	if !ok {
		t.Fatal("serverInfo should be a map")
	}

	if serverInfo["name"] != "game-result-mcp" {
		t.Errorf("serverInfo.name: got %v", serverInfo["name"])
	}
	if serverInfo["version"] != "0.1.0" {
		t.Errorf("serverInfo.version: got %v", serverInfo["version"])
	}
}

func TestServe(t *testing.T) {
	s := NewDefault()
	in := strings.NewReader(strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`not json`,
		`{"jsonrpc":"2.0","id":2,"method":"ping"}`,
	}, "\n"))
	var out bytes.Buffer

	if err := s.Serve(in, &out); err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 responses, got %d: %q", len(lines), out.String())
	}

	for i, wantID := range []float64{1, 2} {
		var resp MCPResponse
		if err := json.Unmarshal([]byte(lines[i]), &resp); err != nil {
			t.Fatalf("response %d: %v", i, err)
		}
		if resp.ID != wantID {
			t.Errorf("response %d ID: got %v, want %v", i, resp.ID, wantID)
		}
		if resp.Error != nil {
			t.Errorf("response %d: unexpected error %v", i, resp.Error)
		}
	}
}
