package types

// Argument describes one parameter of a method or signal.
type Argument struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Default string `json:"default,omitempty"`
}

// Method is a callable member of a class.
type Method struct {
	Name        string     `json:"name"`
	ReturnType  string     `json:"return_type,omitempty"`
	Description string     `json:"description,omitempty"`
	Args        []Argument `json:"args"`
	Qualifiers  []string   `json:"qualifiers"`
}

// Property is a member variable of a class.
type Property struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// Signal is an event emitted by a class.
type Signal struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Args        []Argument `json:"args"`
}

// Constant is a named constant scoped to a class.
type Constant struct {
	Name        string `json:"name"`
	Value       string `json:"value,omitempty"`
	Description string `json:"description,omitempty"`
}

// ClassDoc is the documentation unit for a single class.
//
// All member collections are non-nil after Normalize; consumers never need
// to distinguish an absent section from an empty one.
type ClassDoc struct {
	Name        string     `json:"name"`
	Inherits    string     `json:"inherits,omitempty"`
	Brief       string     `json:"brief,omitempty"`
	Description string     `json:"description,omitempty"`
	Methods     []Method   `json:"methods"`
	Properties  []Property `json:"properties"`
	Signals     []Signal   `json:"signals"`
	Constants   []Constant `json:"constants"`
}

// Normalize replaces nil collections with empty ones, on the class and on
// every member that carries argument or qualifier lists.
func (c *ClassDoc) Normalize() {
	if c.Methods == nil {
		c.Methods = []Method{}
	}
	if c.Properties == nil {
		c.Properties = []Property{}
	}
	if c.Signals == nil {
		c.Signals = []Signal{}
	}
	if c.Constants == nil {
		c.Constants = []Constant{}
	}
	for i := range c.Methods {
		if c.Methods[i].Args == nil {
			c.Methods[i].Args = []Argument{}
		}
		if c.Methods[i].Qualifiers == nil {
			c.Methods[i].Qualifiers = []string{}
		}
	}
	for i := range c.Signals {
		if c.Signals[i].Args == nil {
			c.Signals[i].Args = []Argument{}
		}
	}
}

// AncestryResponse is the result of an inheritance-chain walk.
//
// InheritanceChain lists class names self-first; Classes is the parallel
// list of resolved docs, which may be shorter than the chain when the walk
// ended at a parent that could not be resolved.
type AncestryResponse struct {
	InheritanceChain []string   `json:"inheritance_chain"`
	Classes          []ClassDoc `json:"classes"`
	Warnings         []string   `json:"warnings,omitempty"`
}
