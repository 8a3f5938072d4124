// Package ports holds the interfaces the board's layers meet at. BoardService
// is implemented by internal/app and driven by the HTTP, SSE, MCP and export
// adapters; SnapshotPublisher is implemented by the webhook client and
// driven by the app's broadcaster.
package ports
