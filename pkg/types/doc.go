// Package types provides shared type definitions for the Godoty docs server.
//
// This package defines the domain records used across components: class
// documentation units, index entries, search results, resolved symbols, and
// the error taxonomy carried across component boundaries.
//
// # Core Types
//
// ClassDoc is one documentation unit per class, with always-populated member
// collections:
//
//	doc := &types.ClassDoc{
//	    Name:     "Button",
//	    Inherits: "BaseButton",
//	    Brief:    "A themed button that can contain text.",
//	}
//	doc.Normalize() // member collections are never nil afterwards
//
// DocEntry is one indexable unit, either a whole class or a member
// qualified by its owning class:
//
//	entry := &types.DocEntry{
//	    ID:        42,
//	    Kind:      types.KindSignal,
//	    Name:      "pressed",
//	    ClassName: "Button",
//	}
//	entry.QualifiedName() // "Button.pressed"
//
// # Errors
//
// DocError classifies failures into a small taxonomy: parse and
// configuration errors are fatal to warm-up; invalid-argument and not-found
// errors are recoverable and, for not-found, carry ranked suggestions:
//
//	var derr *types.DocError
//	if errors.As(err, &derr) && derr.Kind == types.ErrNotFound {
//	    fmt.Println("did you mean:", derr.Suggestions)
//	}
//
// # Identifiers
//
// Every entity is addressable by a stable docref:// identifier that survives
// process restarts:
//
//	types.ClassIdentifier("Node")                          // docref://class/Node
//	types.MemberIdentifier("Button", types.KindSignal, "pressed")
package types
