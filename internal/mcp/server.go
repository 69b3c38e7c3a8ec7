package mcp

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/MarbleSodas/godoty-docs/internal/config"
	"github.com/MarbleSodas/godoty-docs/internal/indexer"
	"github.com/MarbleSodas/godoty-docs/internal/parser"
	"github.com/MarbleSodas/godoty-docs/internal/resolver"
	"github.com/MarbleSodas/godoty-docs/internal/searcher"
	"github.com/MarbleSodas/godoty-docs/internal/store"
)

const (
	// ServerName is the MCP server name.
	ServerName = "godoty-docs"
	// ServerVersion is the current server version.
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the documentation index and its
// consumers. The transport handshake is served immediately; the index is
// built in the background, and every tool call waits on a one-shot
// readiness signal before touching it.
type Server struct {
	mcp *server.MCPServer
	cfg *config.Config
	log *slog.Logger

	// ready is closed exactly once, after the index and its consumers have
	// been published. Publishing happens-before the close, so handlers that
	// observed the close may read the fields below without locking.
	ready     chan struct{}
	index     *indexer.MemoryIndex
	engine    *searcher.Engine
	resolver  *resolver.Resolver
	fromCache bool
	warmedAt  time.Time

	// fatal terminates the process on a warm-up failure. Overridable in
	// tests.
	fatal func(error)
}

// NewServer creates the MCP server and registers its tools. The index is
// not built yet; call Serve to start the transport and the warm-up.
func NewServer(cfg *config.Config, log *slog.Logger) *Server {
	s := &Server{
		mcp:   server.NewMCPServer(ServerName, ServerVersion),
		cfg:   cfg,
		log:   log,
		ready: make(chan struct{}),
	}
	s.fatal = func(err error) {
		s.log.Error("warm-up failed", "error", err)
		os.Exit(1)
	}
	s.registerTools()
	return s
}

// Serve starts warm-up in the background and then blocks serving the MCP
// protocol on stdio. The handshake is answered while the corpus is still
// being parsed.
func (s *Server) Serve(ctx context.Context) error {
	go s.warmUp(ctx)
	return server.ServeStdio(s.mcp)
}

// warmUp validates configuration, loads the cached index or rebuilds it
// from the corpus, and fires the readiness signal. Any failure here is
// fatal: serving an empty or partially built index as if it were complete
// would silently corrupt every later answer.
func (s *Server) warmUp(ctx context.Context) {
	if err := s.cfg.Validate(); err != nil {
		s.fatal(err)
		return
	}

	idx := store.Load(s.cfg.CachePath)
	fromCache := idx != nil
	if fromCache {
		s.log.Info("index loaded from cache",
			"path", s.cfg.CachePath, "documents", idx.Stats.DocCount)
	} else {
		s.log.Info("building index from corpus", "dir", s.cfg.ClassesDir())
		p := parser.New()
		p.YieldEvery = s.cfg.YieldEvery

		docs, err := p.ParseCorpus(ctx, s.cfg.ClassesDir())
		if err != nil {
			s.fatal(err)
			return
		}
		idx = indexer.Build(docs)
		s.log.Info("index built",
			"classes", len(docs), "documents", idx.Stats.DocCount)

		// Cache write failures are not fatal; the next start rebuilds.
		if err := store.Save(s.cfg.CachePath, idx); err != nil {
			s.log.Warn("failed to persist index cache", "error", err)
		}
	}

	s.index = idx
	s.engine = searcher.New(idx)
	s.resolver = resolver.New(idx)
	s.fromCache = fromCache
	s.warmedAt = time.Now()
	close(s.ready)
	s.log.Info("server ready")
}

// awaitReady suspends the caller until the readiness signal fires. Calls
// issued before readiness are released in issue order once the index is
// published.
func (s *Server) awaitReady(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// isReady reports readiness without blocking.
func (s *Server) isReady() bool {
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchDocsTool(), s.handleSearchDocs)
	s.mcp.AddTool(getClassTool(), s.handleGetClass)
	s.mcp.AddTool(getSymbolTool(), s.handleGetSymbol)
	s.mcp.AddTool(listClassesTool(), s.handleListClasses)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
}
