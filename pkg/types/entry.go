package types

import "errors"

// EntryKind discriminates the indexable document kinds.
type EntryKind string

const (
	KindClass    EntryKind = "class"
	KindMethod   EntryKind = "method"
	KindProperty EntryKind = "property"
	KindSignal   EntryKind = "signal"
	KindConstant EntryKind = "constant"
)

// ValidKind reports whether k is one of the known entry kinds.
func ValidKind(k EntryKind) bool {
	switch k {
	case KindClass, KindMethod, KindProperty, KindSignal, KindConstant:
		return true
	}
	return false
}

// DocEntry is one indexable unit: either a whole class or one member
// qualified by its owning class. IDs are assigned sequentially at index
// build time and are stable for a given corpus.
type DocEntry struct {
	ID          int       `json:"id"`
	Kind        EntryKind `json:"kind"`
	Name        string    `json:"name"`
	ClassName   string    `json:"class_name,omitempty"` // empty only for class entries
	Brief       string    `json:"brief,omitempty"`
	Description string    `json:"description,omitempty"`
}

// QualifiedName returns "Class.member" for member entries and the bare
// class name for class entries.
func (e *DocEntry) QualifiedName() string {
	if e.Kind == KindClass || e.ClassName == "" {
		return e.Name
	}
	return e.ClassName + "." + e.Name
}

// Snippet returns the brief description, falling back to the full
// description, or "" when the entry carries no text.
func (e *DocEntry) Snippet() string {
	if e.Brief != "" {
		return e.Brief
	}
	return e.Description
}

// Validate performs basic integrity checks on the entry.
func (e *DocEntry) Validate() error {
	if e.ID < 0 {
		return errors.New("entry id must be non-negative")
	}
	if e.Name == "" {
		return errors.New("entry name is required")
	}
	if !ValidKind(e.Kind) {
		return errors.New("invalid entry kind")
	}
	if e.Kind != KindClass && e.ClassName == "" {
		return errors.New("member entries require an owning class")
	}
	if e.Kind == KindClass && e.ClassName != "" {
		return errors.New("class entries must not carry an owning class")
	}
	return nil
}

// SearchHit is a single ranked search result.
type SearchHit struct {
	Identifier string    `json:"identifier"`
	Name       string    `json:"name"`
	Kind       EntryKind `json:"kind"`
	Score      float64   `json:"score"`
	Snippet    string    `json:"snippet,omitempty"`
}

// ResolvedSymbol is a member located through inheritance-aware lookup.
// ClassName is the class the member was actually found on, which may be an
// ancestor of the class named in the query. Exactly one of the member
// pointers is set, matching Kind.
type ResolvedSymbol struct {
	ClassName string    `json:"class_name"`
	Kind      EntryKind `json:"kind"`
	Name      string    `json:"name"`
	Method    *Method   `json:"method,omitempty"`
	Property  *Property `json:"property,omitempty"`
	Signal    *Signal   `json:"signal,omitempty"`
	Constant  *Constant `json:"constant,omitempty"`
}
