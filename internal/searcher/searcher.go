package searcher

import (
	"context"
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/MarbleSodas/godoty-docs/internal/indexer"
	"github.com/MarbleSodas/godoty-docs/pkg/types"
)

// Name-match boosts applied on top of the BM25 score for class-kind
// documents.
const (
	exactNameBoost    = 2.0
	fragmentNameBoost = 0.5
)

// Result limits, matching the tool contract.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// cacheSize bounds the query cache; least recently used entries are evicted.
const cacheSize = 512

// Request contains parameters for a search operation.
type Request struct {
	Query string
	Kind  types.EntryKind // optional filter; empty matches all kinds
	Limit int             // 0 means DefaultLimit
}

// Engine answers ranked search queries against an immutable MemoryIndex.
//
// The index never changes after build, so cached result sets never go
// stale; the LRU bound alone controls memory. A singleflight group
// collapses identical queries arriving concurrently while the cache is
// still cold.
type Engine struct {
	index *indexer.MemoryIndex
	cache *lru.Cache[string, []types.SearchHit]
	group singleflight.Group
}

// New creates an Engine over a built index.
func New(index *indexer.MemoryIndex) *Engine {
	cache, err := lru.New[string, []types.SearchHit](cacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(fmt.Sprintf("failed to create query cache: %v", err))
	}
	return &Engine{index: index, cache: cache}
}

// Search tokenizes the query, scores documents with BM25, applies name
// boosts and the optional kind filter, and returns ranked hits.
func (e *Engine) Search(ctx context.Context, req Request) ([]types.SearchHit, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	// A blank query returns an empty result set without touching the index.
	if strings.TrimSpace(req.Query) == "" {
		return []types.SearchHit{}, nil
	}

	key := cacheKey(req)
	if hits, ok := e.cache.Get(key); ok {
		return copyHits(hits), nil
	}

	v, err, _ := e.group.Do(key, func() (any, error) {
		hits := e.search(req)
		e.cache.Add(key, hits)
		return hits, nil
	})
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return copyHits(v.([]types.SearchHit)), nil
}

// scoredDoc pairs a document id with its final score.
type scoredDoc struct {
	id    int
	score float64
}

func (e *Engine) search(req Request) []types.SearchHit {
	tokens := indexer.TokenizeText(req.Query)
	scores := e.index.ScoreQuery(tokens)

	tokenSet := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tokenSet[tok] = struct{}{}
	}

	ranked := make([]scoredDoc, 0, len(scores))
	for id, score := range scores {
		entry, ok := e.index.Entry(id)
		if !ok {
			continue
		}
		if entry.Kind == types.KindClass {
			score += nameBoost(entry.Name, tokenSet)
		}
		if req.Kind != "" && entry.Kind != req.Kind {
			continue
		}
		ranked = append(ranked, scoredDoc{id: id, score: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].id < ranked[j].id
	})

	if len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	hits := make([]types.SearchHit, 0, len(ranked))
	for _, doc := range ranked {
		entry, _ := e.index.Entry(doc.id)
		hits = append(hits, types.SearchHit{
			Identifier: entry.Identifier(),
			Name:       entry.QualifiedName(),
			Kind:       entry.Kind,
			Score:      doc.score,
			Snippet:    entry.Snippet(),
		})
	}
	return hits
}

// nameBoost rewards class documents whose name matches the query: +2.0 for
// the exact lowercased class name appearing verbatim among the query
// tokens, +0.5 when any query token matches a tokenized fragment of the
// name (so "xr" still lifts "XRInterface"). Both can apply.
func nameBoost(className string, queryTokens map[string]struct{}) float64 {
	boost := 0.0
	if _, ok := queryTokens[strings.ToLower(className)]; ok {
		boost += exactNameBoost
	}
	for _, fragment := range indexer.TokenizeName(className) {
		if _, ok := queryTokens[fragment]; ok {
			boost += fragmentNameBoost
			break
		}
	}
	return boost
}

func validateRequest(req *Request) error {
	if req.Kind != "" && !types.ValidKind(req.Kind) {
		return types.NewInvalidArgument("unknown kind %q (want class|method|property|signal|constant)", req.Kind)
	}
	if req.Limit < 0 {
		return types.NewInvalidArgument("limit must be positive, got %d", req.Limit)
	}
	if req.Limit == 0 {
		req.Limit = DefaultLimit
	}
	if req.Limit > MaxLimit {
		req.Limit = MaxLimit
	}
	return nil
}

func cacheKey(req Request) string {
	return fmt.Sprintf("%s|%s|%d", req.Query, req.Kind, req.Limit)
}

func copyHits(hits []types.SearchHit) []types.SearchHit {
	out := make([]types.SearchHit, len(hits))
	copy(out, hits)
	return out
}
