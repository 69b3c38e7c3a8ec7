// Package mcp implements the MCP stdio server that exposes the documentation
// index to clients.
//
// The server registers five tools:
//
//   - search_docs: ranked full-text search over classes and members
//   - get_class: retrieve a class document, optionally with its ancestors
//   - get_symbol: resolve a qualified Class.member reference
//   - list_classes: enumerate class names, optionally filtered by prefix
//   - get_status: report warm-up state and index statistics
//
// On startup the index warms up in the background, preferring the on-disk
// cache and falling back to a full corpus parse. Every tool except
// get_status blocks until warm-up completes, so clients never observe a
// partially built index.
package mcp
