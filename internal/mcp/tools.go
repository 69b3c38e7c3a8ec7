package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/MarbleSodas/godoty-docs/internal/searcher"
	"github.com/MarbleSodas/godoty-docs/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeNotFound      = -32001 // Class or symbol absent from the corpus
)

// handleSearchDocs handles the search_docs tool invocation
func (s *Server) handleSearchDocs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "query parameter is required", map[string]interface{}{
			"param":  "query",
			"reason": "missing",
		})
	}

	kind := getStringDefault(args, "kind", "")
	limit := getIntDefault(args, "limit", 0)
	if limit < 0 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be positive", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	if err := s.awaitReady(ctx); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "cancelled while waiting for index", nil)
	}

	hits, err := s.engine.Search(ctx, searcher.Request{
		Query: query,
		Kind:  types.EntryKind(kind),
		Limit: limit,
	})
	if err != nil {
		return nil, translateError(err)
	}

	response := map[string]interface{}{
		"identifier": types.SearchIdentifier(query, types.EntryKind(kind), limit),
		"count":      len(hits),
		"results":    hits,
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetClass handles the get_class tool invocation
func (s *Server) handleGetClass(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "name parameter is required", map[string]interface{}{
			"param":  "name",
			"reason": "missing or empty",
		})
	}

	includeAncestors := getBoolDefault(args, "include_ancestors", false)
	maxDepth := getIntDefault(args, "max_depth", -1)
	if _, present := args["max_depth"]; present && maxDepth < 0 {
		return nil, newMCPError(ErrorCodeInvalidParams, "max_depth must be non-negative", map[string]interface{}{
			"param": "max_depth",
			"value": maxDepth,
		})
	}

	// Class entities are also addressable by their stable identifier.
	if types.IsIdentifier(name) {
		ref, err := types.ParseIdentifier(name)
		if err != nil || ref.Kind != types.RefClass {
			return nil, newMCPError(ErrorCodeInvalidParams, "not a class identifier", map[string]interface{}{
				"param": "name",
				"value": name,
			})
		}
		name = ref.Class
	}

	if err := s.awaitReady(ctx); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "cancelled while waiting for index", nil)
	}

	if includeAncestors {
		chain, err := s.resolver.ClassChain(name, maxDepth)
		if err != nil {
			return nil, translateError(err)
		}
		return marshalResult(chain)
	}

	doc, err := s.resolver.Class(name)
	if err != nil {
		return nil, translateError(err)
	}
	return marshalResult(map[string]interface{}{
		"identifier": types.ClassIdentifier(doc.Name),
		"class":      doc,
	})
}

// handleGetSymbol handles the get_symbol tool invocation
func (s *Server) handleGetSymbol(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	name, ok := args["name"].(string)
	if !ok || name == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "name parameter is required", map[string]interface{}{
			"param":  "name",
			"reason": "missing or empty",
		})
	}

	// Member entities are also addressable by their stable identifier.
	if types.IsIdentifier(name) {
		ref, err := types.ParseIdentifier(name)
		if err != nil || ref.Kind != types.RefMember {
			return nil, newMCPError(ErrorCodeInvalidParams, "not a member identifier", map[string]interface{}{
				"param": "name",
				"value": name,
			})
		}
		name = ref.Class + "." + ref.Member
	}

	if err := s.awaitReady(ctx); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "cancelled while waiting for index", nil)
	}

	sym, err := s.resolver.Symbol(name)
	if err != nil {
		return nil, translateError(err)
	}
	return marshalResult(map[string]interface{}{
		"identifier": types.MemberIdentifier(sym.ClassName, sym.Kind, sym.Name),
		"symbol":     sym,
	})
}

// handleListClasses handles the list_classes tool invocation
func (s *Server) handleListClasses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		args = map[string]interface{}{}
	}

	prefix := getStringDefault(args, "prefix", "")
	limit := getIntDefault(args, "limit", 0)
	if limit < 0 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be positive", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	if err := s.awaitReady(ctx); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "cancelled while waiting for index", nil)
	}

	names := s.resolver.ListClasses(prefix, limit)
	return marshalResult(map[string]interface{}{
		"count":   len(names),
		"classes": names,
	})
}

// handleGetStatus handles the get_status tool invocation. Unlike the other
// tools it answers immediately, so the transport can poll warm-up progress.
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.isReady() {
		return marshalResult(map[string]interface{}{
			"ready":   false,
			"message": "Index is still warming up. Retry shortly.",
		})
	}

	kinds := map[types.EntryKind]int{}
	for i := range s.index.Entries {
		kinds[s.index.Entries[i].Kind]++
	}

	return marshalResult(map[string]interface{}{
		"ready":      true,
		"from_cache": s.fromCache,
		"ready_at":   s.warmedAt.Format(time.RFC3339),
		"statistics": map[string]interface{}{
			"documents":      s.index.Stats.DocCount,
			"avg_doc_length": s.index.Stats.AvgDocLength,
			"classes":        kinds[types.KindClass],
			"methods":        kinds[types.KindMethod],
			"properties":     kinds[types.KindProperty],
			"signals":        kinds[types.KindSignal],
			"constants":      kinds[types.KindConstant],
		},
	})
}

// Helper functions

// translateError maps domain errors onto the MCP error taxonomy. Not-found
// errors carry their suggestions in the data payload so the caller can
// self-correct.
func translateError(err error) error {
	var derr *types.DocError
	if !errors.As(err, &derr) {
		return newMCPError(ErrorCodeInternalError, err.Error(), nil)
	}

	switch derr.Kind {
	case types.ErrInvalidArgument:
		return newMCPError(ErrorCodeInvalidParams, derr.Message, nil)
	case types.ErrNotFound:
		var data map[string]interface{}
		if len(derr.Suggestions) > 0 {
			data = map[string]interface{}{"suggestions": derr.Suggestions}
		}
		return newMCPError(ErrorCodeNotFound, derr.Message, data)
	default:
		// Parse and config errors are fatal during warm-up and should never
		// reach a handler; anything else is an internal fault.
		return newMCPError(ErrorCodeInternalError, derr.Message, nil)
	}
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// marshalResult renders a value as an indented-JSON tool result.
func marshalResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to encode response", nil)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getBoolDefault extracts a boolean parameter with a default value
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
