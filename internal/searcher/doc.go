// Package searcher answers ranked full-text queries against the built
// documentation index.
//
// A query is tokenized with the free-text tokenizer, scored with BM25, and
// then class-kind documents receive additive name-match boosts: a large one
// when the query names the class exactly and a small one when any query
// token matches a fragment of the class name. Results are optionally
// filtered by entry kind, sorted by descending final score, and truncated.
//
//	engine := searcher.New(index)
//	hits, err := engine.Search(ctx, searcher.Request{Query: "rotate node"})
//
// The engine keeps an LRU cache of result sets keyed by the full request;
// because the index is immutable for the process lifetime, cached entries
// never expire. Concurrent identical queries are collapsed with
// singleflight while the cache is cold.
package searcher
