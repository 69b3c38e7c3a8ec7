// Package indexer builds the in-memory ranking structure over parsed class
// documentation and provides the tokenizers feeding it.
//
// # Tokenization
//
// Identifier names are split on compound boundaries before lowercasing:
//
//	indexer.TokenizeName("Camera3D")       // [camera 3d camera3d]
//	indexer.TokenizeName("HTTPRequest")    // [http request httprequest]
//	indexer.TokenizeName("CPUParticles3D") // [cpu particles 3d cpuparticles3d]
//
// The compact concatenation is appended alongside the fragments so both
// forms are searchable. Free text goes through TokenizeText, which lowercases,
// strips non-alphanumerics, and drops tokens shorter than two characters.
//
// # Index construction
//
// Build consumes all parsed classes in one batch: per class a class-kind
// entry, then one member-kind entry per method, property, signal, and
// constant, with sequential integer ids. It maintains per-term posting
// lists, per-document lengths (floored at 1), and corpus statistics. The
// build is O(total tokens); the result is immutable and shared read-only,
// so no locking is required after warm-up.
//
// # Scoring
//
// ScoreQuery implements BM25 with k1=1.5 and b=0.75 over the posting lists.
// Documents matching no query token receive no score entry at all; they are
// excluded from results rather than scored as zero.
package indexer
