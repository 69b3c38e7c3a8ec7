package types

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Identifiers give every entity a stable, opaque address for out-of-band
// retrieval:
//
//	docref://class/Node
//	docref://member/Button/signal/pressed
//	docref://search?q=rotate+node&kind=method&limit=10
//
// They are deterministic for a given corpus, so they survive process
// restarts.
const IdentifierScheme = "docref"

// RefKind discriminates parsed identifier targets.
type RefKind string

const (
	RefClass  RefKind = "class"
	RefMember RefKind = "member"
	RefSearch RefKind = "search"
)

// DocRef is a parsed docref:// identifier.
type DocRef struct {
	Kind       RefKind
	Class      string    // RefClass, RefMember
	Member     string    // RefMember
	MemberKind EntryKind // RefMember
	Query      string    // RefSearch
	SearchKind EntryKind // RefSearch, optional
	Limit      int       // RefSearch, 0 when unset
}

// ClassIdentifier returns the stable identifier for a class entity.
func ClassIdentifier(class string) string {
	return IdentifierScheme + "://class/" + url.PathEscape(class)
}

// MemberIdentifier returns the stable identifier for a member entity.
func MemberIdentifier(class string, kind EntryKind, member string) string {
	return fmt.Sprintf("%s://member/%s/%s/%s",
		IdentifierScheme, url.PathEscape(class), kind, url.PathEscape(member))
}

// SearchIdentifier returns the stable identifier for a search result set.
func SearchIdentifier(query string, kind EntryKind, limit int) string {
	v := url.Values{}
	v.Set("q", query)
	if kind != "" {
		v.Set("kind", string(kind))
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return IdentifierScheme + "://search?" + v.Encode()
}

// Identifier returns the stable identifier for an index entry.
func (e *DocEntry) Identifier() string {
	if e.Kind == KindClass {
		return ClassIdentifier(e.Name)
	}
	return MemberIdentifier(e.ClassName, e.Kind, e.Name)
}

// IsIdentifier reports whether s looks like a docref identifier.
func IsIdentifier(s string) bool {
	return strings.HasPrefix(s, IdentifierScheme+"://")
}

// ParseIdentifier parses a docref:// string back into its target.
func ParseIdentifier(s string) (*DocRef, error) {
	u, err := url.Parse(s)
	if err != nil || u.Scheme != IdentifierScheme {
		return nil, fmt.Errorf("not a %s:// identifier: %q", IdentifierScheme, s)
	}

	// url.Parse treats the first path segment as the host for scheme://a/b.
	segs := []string{u.Host}
	for _, p := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		if p != "" {
			seg, err := url.PathUnescape(p)
			if err != nil {
				return nil, fmt.Errorf("malformed identifier %q: %v", s, err)
			}
			segs = append(segs, seg)
		}
	}

	switch RefKind(segs[0]) {
	case RefClass:
		if len(segs) != 2 || segs[1] == "" {
			return nil, fmt.Errorf("class identifier requires a class name: %q", s)
		}
		return &DocRef{Kind: RefClass, Class: segs[1]}, nil

	case RefMember:
		if len(segs) != 4 {
			return nil, fmt.Errorf("member identifier requires class/kind/member: %q", s)
		}
		kind := EntryKind(segs[2])
		if !ValidKind(kind) || kind == KindClass {
			return nil, fmt.Errorf("invalid member kind %q in %q", segs[2], s)
		}
		return &DocRef{Kind: RefMember, Class: segs[1], MemberKind: kind, Member: segs[3]}, nil

	case RefSearch:
		q := u.Query()
		ref := &DocRef{Kind: RefSearch, Query: q.Get("q")}
		if ref.Query == "" {
			return nil, fmt.Errorf("search identifier requires a q parameter: %q", s)
		}
		if k := q.Get("kind"); k != "" {
			kind := EntryKind(k)
			if !ValidKind(kind) {
				return nil, fmt.Errorf("invalid search kind %q in %q", k, s)
			}
			ref.SearchKind = kind
		}
		if l := q.Get("limit"); l != "" {
			n, err := strconv.Atoi(l)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid search limit %q in %q", l, s)
			}
			ref.Limit = n
		}
		return ref, nil
	}

	return nil, fmt.Errorf("unknown identifier target %q in %q", segs[0], s)
}
