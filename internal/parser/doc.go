// Package parser reads the documentation corpus into typed class records.
//
// The corpus is a directory of XML files, one file per class, following the
// Godot class-reference layout: a root class element with name and inherits
// attributes, brief_description and description children, and methods,
// members, signals, and constants sections.
//
// # Basic Usage
//
//	p := parser.New()
//	docs, err := p.ParseCorpus(ctx, "./doc/classes")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Normalization
//
// Absent sections normalize to empty collections, never nil: every returned
// ClassDoc has non-nil Methods, Properties, Signals, and Constants, and
// every method and signal has non-nil Args (and Qualifiers for methods).
// Consumers never need to special-case a missing section.
//
// # Error Handling
//
// Parsing is strict: a file whose root element lacks a name attribute, or
// that fails XML decoding, aborts the entire batch with a parse error naming
// the offending file. A silently incomplete corpus would surface later as
// misleading "class not found" results, which is much harder to diagnose.
//
// ParseCorpus checks its context for cancellation every few files so that a
// large corpus parse stays responsive during server warm-up.
package parser
