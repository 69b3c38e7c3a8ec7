package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// searchDocsTool returns the tool definition for search_docs
func searchDocsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_docs",
		Description: "Search the engine reference documentation for classes, methods, properties, signals, and constants",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query (keywords or an identifier like 'CharacterBody2D')",
				},
				"kind": map[string]interface{}{
					"type":        "string",
					"description": "Restrict results to one entry kind",
					"enum":        []string{"class", "method", "property", "signal", "constant"},
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of results to return (1-100)",
					"default":     10,
					"minimum":     1,
					"maximum":     100,
				},
			},
			Required: []string{"query"},
		},
	}
}

// getClassTool returns the tool definition for get_class
func getClassTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_class",
		Description: "Get the reference documentation for a class, optionally with its full inheritance chain",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Exact class name (e.g. 'Node3D') or a docref://class/ identifier",
				},
				"include_ancestors": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, resolve and return the whole inheritance chain",
					"default":     false,
				},
				"max_depth": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of ancestors to resolve beyond the class itself (unbounded when omitted)",
					"minimum":     0,
				},
			},
			Required: []string{"name"},
		},
	}
}

// getSymbolTool returns the tool definition for get_symbol
func getSymbolTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_symbol",
		Description: "Resolve a qualified 'Class.member' symbol, following the inheritance chain for inherited members",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Qualified symbol name (e.g. 'Button.pressed') or a docref://member/ identifier",
				},
			},
			Required: []string{"name"},
		},
	}
}

// listClassesTool returns the tool definition for list_classes
func listClassesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_classes",
		Description: "List class names present in the documentation corpus",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"prefix": map[string]interface{}{
					"type":        "string",
					"description": "Case-insensitive name prefix filter",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of names to return",
					"minimum":     1,
				},
			},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report index readiness and corpus statistics; answers immediately even during warm-up",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
