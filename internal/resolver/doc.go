// Package resolver answers class and symbol identity lookups, including
// multi-level inheritance ancestry and nearest-name suggestions on a miss.
//
// Class lookup is exact; a miss carries up to five suggestions ranked by
// Levenshtein distance over the whole corpus. Symbol lookup requires the
// "Class.member" shape, then walks the inheritance chain upward checking
// methods, properties, signals, and constants at each level, so inherited
// members resolve the way the engine itself resolves them. Member
// suggestions on a miss are deliberately contextual, drawn only from the
// queried class and its ancestors rather than the whole corpus.
package resolver
