package resolver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MarbleSodas/godoty-docs/internal/indexer"
	"github.com/MarbleSodas/godoty-docs/pkg/types"
)

// qualifiedNameRe matches the exact "Class.member" shape: a single dot with
// identifier characters on both sides.
var qualifiedNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*\.[A-Za-z_][A-Za-z0-9_]*$`)

// Resolver answers class and symbol identity lookups against the built
// index, including inheritance-aware member resolution.
type Resolver struct {
	index *indexer.MemoryIndex
}

// New creates a Resolver over a built index.
func New(index *indexer.MemoryIndex) *Resolver {
	return &Resolver{index: index}
}

// Class returns the documentation for an exact class name. On a miss it
// returns a not-found error carrying up to five nearest-name suggestions
// ranked by ascending edit distance.
func (r *Resolver) Class(name string) (*types.ClassDoc, error) {
	doc, ok := r.index.Class(name)
	if !ok {
		return nil, types.NewNotFound(
			fmt.Sprintf("class %q not found", name),
			nearest(name, r.index.ClassNames()))
	}
	return doc, nil
}

// ClassChain walks inherits links starting at name, self first. maxDepth
// bounds the number of ancestors visited beyond the class itself; negative
// means unbounded. The walk stops cleanly at a root, and a parent missing
// from the corpus appends the parent's name to the chain for visibility,
// records a warning, and stops without failing. A visited-set guard turns a
// cyclic inherits relationship in malformed source data into a warning stop
// instead of an endless walk.
func (r *Resolver) ClassChain(name string, maxDepth int) (*types.AncestryResponse, error) {
	doc, err := r.Class(name)
	if err != nil {
		return nil, err
	}

	resp := &types.AncestryResponse{
		InheritanceChain: []string{doc.Name},
		Classes:          []types.ClassDoc{*doc},
	}
	visited := map[string]struct{}{doc.Name: {}}

	current := doc
	ancestors := 0
	for current.Inherits != "" {
		if maxDepth >= 0 && ancestors >= maxDepth {
			break
		}
		parent := current.Inherits

		if _, seen := visited[parent]; seen {
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("inheritance cycle detected at %q; traversal stopped", parent))
			break
		}
		visited[parent] = struct{}{}

		parentDoc, ok := r.index.Class(parent)
		if !ok {
			resp.InheritanceChain = append(resp.InheritanceChain, parent)
			resp.Warnings = append(resp.Warnings,
				fmt.Sprintf("class %q inherits %q, which is not present in the corpus", current.Name, parent))
			break
		}

		resp.InheritanceChain = append(resp.InheritanceChain, parentDoc.Name)
		resp.Classes = append(resp.Classes, *parentDoc)
		current = parentDoc
		ancestors++
	}

	return resp, nil
}

// Symbol resolves a "Class.member" lookup, walking the inheritance chain
// upward so inherited members resolve the way they do in the engine itself.
// The returned symbol is tagged with the class it was actually found on,
// which may be an ancestor of the class named in the query.
func (r *Resolver) Symbol(qualified string) (*types.ResolvedSymbol, error) {
	if !qualifiedNameRe.MatchString(qualified) {
		return nil, types.NewInvalidArgument(
			"symbol name %q must have the form \"Class.member\"", qualified)
	}

	dot := strings.Index(qualified, ".")
	className, memberName := qualified[:dot], qualified[dot+1:]

	doc, ok := r.index.Class(className)
	if !ok {
		return nil, types.NewNotFound(
			fmt.Sprintf("class %q not found", className),
			nearest(className, r.index.ClassNames()))
	}

	// Track visited classes so a malformed cyclic corpus cannot loop the
	// lookup forever.
	visited := make(map[string]struct{})
	candidates := make([]string, 0, 32)

	for current := doc; current != nil; {
		if _, seen := visited[current.Name]; seen {
			break
		}
		visited[current.Name] = struct{}{}

		if sym := findMember(current, memberName); sym != nil {
			return sym, nil
		}
		candidates = appendMemberNames(candidates, current)

		if current.Inherits == "" {
			break
		}
		parent, ok := r.index.Class(current.Inherits)
		if !ok {
			break
		}
		current = parent
	}

	// Suggestions are contextual: drawn from the queried class and its
	// ancestors' own members, qualified against the queried class even when
	// the nearest name lives on an ancestor.
	suggestions := nearest(memberName, dedupe(candidates))
	for i, s := range suggestions {
		suggestions[i] = className + "." + s
	}
	return nil, types.NewNotFound(
		fmt.Sprintf("symbol %q not found on %q or its ancestors", memberName, className),
		suggestions)
}

// ListClasses returns corpus class names in sorted order, optionally
// filtered by a case-insensitive prefix and truncated to limit.
func (r *Resolver) ListClasses(prefix string, limit int) []string {
	names := r.index.ClassNames()
	if prefix != "" {
		lower := strings.ToLower(prefix)
		filtered := names[:0]
		for _, name := range names {
			if strings.HasPrefix(strings.ToLower(name), lower) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names
}

// findMember checks methods, then properties, then signals, then constants,
// mirroring the lookup precedence of the original engine.
func findMember(doc *types.ClassDoc, name string) *types.ResolvedSymbol {
	for i := range doc.Methods {
		if doc.Methods[i].Name == name {
			m := doc.Methods[i]
			return &types.ResolvedSymbol{ClassName: doc.Name, Kind: types.KindMethod, Name: name, Method: &m}
		}
	}
	for i := range doc.Properties {
		if doc.Properties[i].Name == name {
			p := doc.Properties[i]
			return &types.ResolvedSymbol{ClassName: doc.Name, Kind: types.KindProperty, Name: name, Property: &p}
		}
	}
	for i := range doc.Signals {
		if doc.Signals[i].Name == name {
			s := doc.Signals[i]
			return &types.ResolvedSymbol{ClassName: doc.Name, Kind: types.KindSignal, Name: name, Signal: &s}
		}
	}
	for i := range doc.Constants {
		if doc.Constants[i].Name == name {
			c := doc.Constants[i]
			return &types.ResolvedSymbol{ClassName: doc.Name, Kind: types.KindConstant, Name: name, Constant: &c}
		}
	}
	return nil
}

func appendMemberNames(dst []string, doc *types.ClassDoc) []string {
	for i := range doc.Methods {
		dst = append(dst, doc.Methods[i].Name)
	}
	for i := range doc.Properties {
		dst = append(dst, doc.Properties[i].Name)
	}
	for i := range doc.Signals {
		dst = append(dst, doc.Signals[i].Name)
	}
	for i := range doc.Constants {
		dst = append(dst, doc.Constants[i].Name)
	}
	return dst
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
